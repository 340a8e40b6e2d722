package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
)

func TestParseBearer(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		token string
		ok    bool
	}{
		{name: "valid", raw: "Bearer abc.def", token: "abc.def", ok: true},
		{name: "trailing space trimmed", raw: "Bearer abc  ", token: "abc", ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "missing token", raw: "Bearer ", ok: false},
		{name: "wrong scheme", raw: "Basic abc", ok: false},
		{name: "lowercase scheme", raw: "bearer abc", ok: false},
		{name: "bare token", raw: "abc", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ParseBearer(tc.raw)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.token, token)
		})
	}
}

type sampleBody struct {
	Email    string      `json:"email" validate:"required,email"`
	Items    []sampleRow `json:"items" validate:"required,min=1,dive"`
	Discount float64     `json:"discount" validate:"gte=0"`
}

type sampleRow struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

func newBodyRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodyAccepts(t *testing.T) {
	var dest sampleBody
	err := DecodeJSONBody(newBodyRequest(`{"email":"a@b.co","items":[{"quantity":2}]}`), &dest)
	require.NoError(t, err)
	assert.Equal(t, 2, dest.Items[0].Quantity)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest sampleBody
	err := DecodeJSONBody(newBodyRequest(`{"email":"a@b.co","items":[{"quantity":1}],"extra":true}`), &dest)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	var dest sampleBody
	err := DecodeJSONBody(newBodyRequest(`{"email":`), &dest)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyReportsFieldPaths(t *testing.T) {
	var dest sampleBody
	err := DecodeJSONBody(newBodyRequest(`{"email":"nope","items":[{"quantity":0}],"discount":-1}`), &dest)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 1", details["items[0].quantity"])
	assert.Equal(t, "must be greater than or equal to 0", details["discount"])
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=10&bad=x&big=500", nil)

	v, err := ParseQueryInt(req, "limit", 25, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ParseQueryInt(req, "missing", 25, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	_, err = ParseQueryInt(req, "bad", 25, 1, 100)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = ParseQueryInt(req, "big", 25, 1, 100)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
