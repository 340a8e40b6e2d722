package tables

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
)

const tableRType = "TB"

type Table struct {
	ID      string `json:"id"`
	TableNo string `json:"table_no"`
	Title   string `json:"title"`
	Waiter  string `json:"waiter"`
}

type Result struct {
	Tables []Table            `json:"tables"`
	Source enums.TableSource `json:"source"`
}

// Service lists the dine-in tables a kiosk order can be assigned to.
type Service interface {
	List(ctx context.Context, token string) (*Result, error)
	VerifySession(ctx context.Context, token string) error
}

// tablesSource is satisfied by the tables read-through cache.
type tablesSource interface {
	Get(ctx context.Context, token string) ([]pos.RawTable, error)
}

type ServiceParams struct {
	Source          tablesSource
	Logger          *logger.Logger
	FallbackEnabled bool
	FallbackCount   int
}

type service struct {
	source          tablesSource
	logger          *logger.Logger
	fallbackEnabled bool
	fallbackCount   int
}

func NewService(params ServiceParams) (Service, error) {
	if params.Source == nil {
		return nil, fmt.Errorf("tables source is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.FallbackEnabled && params.FallbackCount <= 0 {
		return nil, fmt.Errorf("fallback count must be positive when fallback is enabled")
	}
	return &service{
		source:          params.Source,
		logger:          params.Logger,
		fallbackEnabled: params.FallbackEnabled,
		fallbackCount:   params.FallbackCount,
	}, nil
}

// List returns active table rows sorted by table number. When the POS is unavailable and
// fallback is enabled a synthesized list is returned instead; rejected sessions are never masked.
func (s *service) List(ctx context.Context, token string) (*Result, error) {
	raw, err := s.source.Get(ctx, token)
	if err != nil {
		if s.fallbackEnabled && pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
			s.logger.Warn(s.logger.WithField(ctx, "error", err.Error()), "serving fallback table list")
			return &Result{Tables: Fallback(s.fallbackCount), Source: enums.TableSourceFallback}, nil
		}
		return nil, err
	}
	return &Result{Tables: Filter(raw), Source: enums.TableSourcePOS}, nil
}

// VerifySession confirms the POS still accepts token. A cached table list owned by the same
// token counts as proof; otherwise the POS is asked. The fallback list never applies here.
func (s *service) VerifySession(ctx context.Context, token string) error {
	_, err := s.source.Get(ctx, token)
	return err
}

// Filter keeps active "TB" rows and sorts them by table number.
func Filter(raw []pos.RawTable) []Table {
	out := make([]Table, 0, len(raw))
	for _, r := range raw {
		if !strings.EqualFold(strings.TrimSpace(r.RType), tableRType) || !isActive(r.Status.String()) {
			continue
		}
		out = append(out, Table{
			ID:      strings.TrimSpace(r.ID.String()),
			TableNo: strings.TrimSpace(r.TableNo.String()),
			Title:   r.Title,
			Waiter:  r.Waiter.String(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessTableNo(out[i].TableNo, out[j].TableNo)
	})
	return out
}

func isActive(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "1":
		return true
	}
	return false
}

// lessTableNo orders numeric table numbers first (by value), then the rest lexically.
func lessTableNo(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// Fallback synthesizes tables "01".."count".
func Fallback(count int) []Table {
	out := make([]Table, 0, count)
	for i := 1; i <= count; i++ {
		no := fmt.Sprintf("%02d", i)
		out = append(out, Table{
			ID:      strconv.Itoa(i),
			TableNo: no,
			Title:   "Table " + no,
		})
	}
	return out
}
