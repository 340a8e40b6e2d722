package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhi-mygenie/Kiosk/api/middleware"
	"github.com/Abhi-mygenie/Kiosk/internal/auth"
	"github.com/Abhi-mygenie/Kiosk/internal/menu"
	"github.com/Abhi-mygenie/Kiosk/internal/orders"
	"github.com/Abhi-mygenie/Kiosk/internal/tables"
	"github.com/Abhi-mygenie/Kiosk/pkg/config"
	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
)

type stubAuthService struct {
	resp *auth.LoginResponse
	err  error
	got  auth.LoginRequest
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	s.got = req
	return s.resp, s.err
}

type stubMenuService struct {
	categories []menu.Category
	items      []menu.MenuItem
	err        error
	token      string
	category   string
}

func (s *stubMenuService) ListCategories(_ context.Context, token string) ([]menu.Category, error) {
	s.token = token
	return s.categories, s.err
}

func (s *stubMenuService) ListItems(_ context.Context, token, categoryID string) ([]menu.MenuItem, error) {
	s.token = token
	s.category = categoryID
	return s.items, s.err
}

type stubTablesService struct {
	result *tables.Result
	err    error
}

func (s *stubTablesService) List(context.Context, string) (*tables.Result, error) {
	return s.result, s.err
}

func (s *stubTablesService) VerifySession(context.Context, string) error {
	return s.err
}

type stubOrdersService struct {
	order  *orders.OrderDTO
	list   *orders.ListResult
	err    error
	req    orders.CreateOrderRequest
	params orders.ListParams
	token  string
	id     string
}

func (s *stubOrdersService) Submit(_ context.Context, token string, req orders.CreateOrderRequest) (*orders.OrderDTO, error) {
	s.token = token
	s.req = req
	return s.order, s.err
}

func (s *stubOrdersService) Get(_ context.Context, id string) (*orders.OrderDTO, error) {
	s.id = id
	return s.order, s.err
}

func (s *stubOrdersService) List(_ context.Context, params orders.ListParams) (*orders.ListResult, error) {
	s.params = params
	return s.list, s.err
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func withToken(req *http.Request, token string) *http.Request {
	return req.WithContext(middleware.WithToken(req.Context(), token))
}

func TestRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	Root()(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Kiosk API Ready"}`, rec.Body.String())
}

func TestBrandingDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	Branding(config.BrandingConfig{PrimaryColor: "#1A1A1A", AccentColor: "#C5A059", RestaurantName: "Hotel Lumiere"})(rec, httptest.NewRequest(http.MethodGet, "/api/config/branding", nil))
	assert.JSONEq(t, `{"primary_color":"#1A1A1A","accent_color":"#C5A059","logo_url":null,"restaurant_name":"Hotel Lumiere"}`, rec.Body.String())
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{resp: &auth.LoginResponse{Token: "pos-token", RoleName: "Manager", Role: []string{"kiosk"}}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"owner@hotel.test","password":"secret"}`))
	AuthLogin(svc, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pos-token", body["token"])
	assert.Equal(t, "owner@hotel.test", svc.got.Email)
}

func TestAuthLoginErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "invalid body", body: `{"email":"not-an-email","password":"x"}`, status: http.StatusBadRequest},
		{name: "rejected credentials", body: `{"email":"a@b.co","password":"x"}`, err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"), status: http.StatusUnauthorized},
		{name: "pos down", body: `{"email":"a@b.co","password":"x"}`, err: pkgerrors.New(pkgerrors.CodeDependency, "pos unavailable"), status: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			AuthLogin(&stubAuthService{err: tc.err}, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body)))
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"detail"`)
		})
	}
}

func TestAuthLoginNilService(t *testing.T) {
	rec := httptest.NewRecorder()
	AuthLogin(nil, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMenuCategoriesPassesToken(t *testing.T) {
	svc := &stubMenuService{categories: []menu.Category{{ID: "3", Name: "Starters"}}}
	rec := httptest.NewRecorder()
	MenuCategories(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodGet, "/api/menu/categories", nil), "tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", svc.token)
	assert.JSONEq(t, `[{"id":"3","name":"Starters","image":""}]`, rec.Body.String())
}

func TestMenuItemsCategoryFilterAndErrors(t *testing.T) {
	svc := &stubMenuService{items: []menu.MenuItem{}}
	rec := httptest.NewRecorder()
	MenuItems(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodGet, "/api/menu/items?category=%203%20", nil), "tok"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", svc.category)
	assert.JSONEq(t, `[]`, rec.Body.String())

	svc.err = pkgerrors.New(pkgerrors.CodeUnauthenticated, "pos rejected token")
	rec = httptest.NewRecorder()
	MenuItems(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodGet, "/api/menu/items", nil), "tok"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTables(t *testing.T) {
	svc := &stubTablesService{result: &tables.Result{Tables: []tables.Table{{ID: "1", TableNo: "01", Title: "Table 01"}}, Source: enums.TableSourceFallback}}
	rec := httptest.NewRecorder()
	Tables(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodGet, "/api/tables", nil), "tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tables":[{"id":"1","table_no":"01","title":"Table 01","waiter":""}],"source":"fallback"}`, rec.Body.String())

	svc.err = pkgerrors.New(pkgerrors.CodeDependency, "pos unavailable")
	rec = httptest.NewRecorder()
	Tables(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodGet, "/api/tables", nil), "tok"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOrderCreateReturns201(t *testing.T) {
	svc := &stubOrdersService{order: &orders.OrderDTO{ID: "local-1", Status: enums.OrderStatusPendingPOSSync, Items: []orders.CartItemDTO{}}}
	body := `{"table_number":"12","items":[{"item_id":"7","name":"Paneer","price":94.5,"quantity":1,"variations":[],"grouped_variations":{}}],"discount":0,"cgst":2.36,"sgst":2.36,"total":99.22,"guest_name":"Asha"}`
	rec := httptest.NewRecorder()
	OrderCreate(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)), "tok"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok", svc.token)
	assert.Equal(t, "Asha", *svc.req.GuestName)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pending_pos_sync", got["status"])
	assert.Nil(t, got["pos_order_id"])
}

func TestOrderCreateValidation(t *testing.T) {
	svc := &stubOrdersService{}
	rec := httptest.NewRecorder()
	OrderCreate(svc, nil)(rec, withToken(httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"table_number":"12","items":[],"discount":0,"cgst":0,"sgst":0,"total":0}`)), "tok"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.token, "service must not be called")
}

func TestOrderGet(t *testing.T) {
	svc := &stubOrdersService{order: &orders.OrderDTO{ID: "4521", Status: enums.OrderStatusConfirmed}}
	r := chi.NewRouter()
	r.Get("/api/orders/{orderId}", OrderGet(svc, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/4521", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4521", svc.id)

	svc.err = pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive("dev")(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get(envHeader))

	rec = httptest.NewRecorder()
	HealthReady("dev", nil, map[string]Pinger{"db": stubPinger{}, "redis": nil})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","checks":{"db":"ok"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HealthReady("dev", nil, map[string]Pinger{"db": stubPinger{err: errors.New("down")}})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"db":"down"`)
}

func TestOrderList(t *testing.T) {
	svc := &stubOrdersService{list: &orders.ListResult{Orders: []orders.OrderDTO{}, NextCursor: "abc"}}
	rec := httptest.NewRecorder()
	OrderList(svc, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/orders?status=pending_pos_sync&limit=5&cursor=xyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[],"next_cursor":"abc"}`, rec.Body.String())
	assert.Equal(t, "pending_pos_sync", svc.params.Status)
	assert.Equal(t, 5, svc.params.Limit)
	assert.Equal(t, "xyz", svc.params.Cursor)

	rec = httptest.NewRecorder()
	OrderList(svc, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/orders?limit=1000", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
