package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	return NewWithRegistry(reg, reg)
}

func TestObserveOperation(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation("create", nil)
	m.ObserveOperation("create", domainerrors.ErrDuplicateAccount.WrapMessage("create"))
	m.ObserveOperation("create", assert.AnError)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("create", "DUPLICATE_ACCOUNT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("create", "INTERNAL_ERROR")))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	m := newTestMetrics()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/api/v1/users/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrAccountNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/users/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/users/:id", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := newTestMetrics()
	m.ObserveOperation("activate", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `accounts_operations_total{operation="activate",result="ok"} 1`))
}
