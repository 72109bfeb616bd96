package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	fixture := newTestFixture(t)

	t.Run("generates an ID and echoes it", func(t *testing.T) {
		rr := fixture.do(t, http.MethodGet, "/api/things", "", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(headerTraceID))
	})

	t.Run("honors an inbound ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/things", nil)
		req.Header.Set(headerTraceID, "caller-supplied-id")

		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		assert.Equal(t, "caller-supplied-id", rr.Header().Get(headerTraceID))
	})
}
