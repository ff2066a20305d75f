package ping

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhadGhee/socialbook/testutils"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	testutils.InitTestMain()

	r := testutils.SetupTestRouter()
	r.GET("/ping", Ping)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "pong")
}
