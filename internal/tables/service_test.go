package tables

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

type stubSource struct {
	tables []pos.RawTable
	err    error
}

func (s stubSource) Get(context.Context, string) ([]pos.RawTable, error) {
	return s.tables, s.err
}

func newService(t *testing.T, src stubSource, fallback bool) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Source:          src,
		Logger:          logger.New(logger.Options{Output: io.Discard}),
		FallbackEnabled: fallback,
		FallbackCount:   100,
	})
	require.NoError(t, err)
	return svc
}

func TestListKeepsActiveTablesSorted(t *testing.T) {
	src := stubSource{tables: []pos.RawTable{
		{ID: "a", TableNo: "10", Title: "T10", RType: "TB", Status: "active"},
		{ID: "b", TableNo: "101", Title: "Room 101", RType: "RM", Status: "active"},
		{ID: "c", TableNo: "2", Title: "T2", RType: "TB", Status: "1", Waiter: "Ravi"},
		{ID: "d", TableNo: "3", Title: "T3", RType: "TB", Status: "inactive"},
		{ID: "e", TableNo: "1", Title: "T1", RType: "tb", Status: "Active"},
	}}
	result, err := newService(t, src, true).List(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, enums.TableSourcePOS, result.Source)
	require.Len(t, result.Tables, 3)
	assert.Equal(t, "1", result.Tables[0].TableNo)
	assert.Equal(t, Table{ID: "c", TableNo: "2", Title: "T2", Waiter: "Ravi"}, result.Tables[1])
	assert.Equal(t, "10", result.Tables[2].TableNo)
}

func TestListEmptyPOSResponseIsNotFallback(t *testing.T) {
	result, err := newService(t, stubSource{}, true).List(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, enums.TableSourcePOS, result.Source)
	assert.NotNil(t, result.Tables)
	assert.Empty(t, result.Tables)
}

func TestListFallsBackOnlyWhenUnavailable(t *testing.T) {
	down := stubSource{err: pkgerrors.New(pkgerrors.CodeDependency, "timeout")}
	result, err := newService(t, down, true).List(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, enums.TableSourceFallback, result.Source)
	require.Len(t, result.Tables, 100)
	assert.Equal(t, "01", result.Tables[0].TableNo)
	assert.Equal(t, "99", result.Tables[98].TableNo)
	assert.Equal(t, "100", result.Tables[99].TableNo)

	_, err = newService(t, down, false).List(context.Background(), "tok")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	rejected := stubSource{err: pkgerrors.New(pkgerrors.CodeUnauthenticated, "session expired")}
	_, err = newService(t, rejected, true).List(context.Background(), "tok")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated))
}

func TestLessTableNoMixedValues(t *testing.T) {
	tables := Filter([]pos.RawTable{
		{TableNo: "B2", RType: "TB", Status: "1"},
		{TableNo: "12", RType: "TB", Status: "1"},
		{TableNo: "A1", RType: "TB", Status: "1"},
		{TableNo: "9", RType: "TB", Status: "1"},
	})
	got := make([]string, 0, len(tables))
	for _, tb := range tables {
		got = append(got, tb.TableNo)
	}
	assert.Equal(t, []string{"9", "12", "A1", "B2"}, got)
}

func TestLessTableNoIsOrderIndependent(t *testing.T) {
	sorted := func(nos ...string) []string {
		raw := make([]pos.RawTable, 0, len(nos))
		for _, no := range nos {
			raw = append(raw, pos.RawTable{TableNo: types.FlexString(no), RType: "TB", Status: "1"})
		}
		out := make([]string, 0, len(nos))
		for _, tb := range Filter(raw) {
			out = append(out, tb.TableNo)
		}
		return out
	}

	want := []string{"9", "10", "1a"}
	assert.Equal(t, want, sorted("10", "9", "1a"))
	assert.Equal(t, want, sorted("1a", "10", "9"))
	assert.Equal(t, want, sorted("9", "1a", "10"))
}

func TestVerifySessionIgnoresFallback(t *testing.T) {
	down := stubSource{err: pkgerrors.New(pkgerrors.CodeDependency, "timeout")}
	err := newService(t, down, true).VerifySession(context.Background(), "tok")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	rejected := stubSource{err: pkgerrors.New(pkgerrors.CodeUnauthenticated, "session expired")}
	err = newService(t, rejected, true).VerifySession(context.Background(), "tok")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated))

	assert.NoError(t, newService(t, stubSource{}, false).VerifySession(context.Background(), "tok"))
}

func TestNewServiceValidation(t *testing.T) {
	logg := logger.New(logger.Options{Output: io.Discard})
	_, err := NewService(ServiceParams{Logger: logg})
	assert.Error(t, err)
	_, err = NewService(ServiceParams{Source: stubSource{}})
	assert.Error(t, err)
	_, err = NewService(ServiceParams{Source: stubSource{}, Logger: logg, FallbackEnabled: true})
	assert.Error(t, err)
}
