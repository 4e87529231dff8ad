package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandlingMiddleware_RecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandlingMiddleware(testutil.NewLogger(t)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body response.APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, response.ErrCodeServerInternal, body.Error.Code)
}

func TestRequestTimeoutMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestTimeoutMiddleware(testutil.NewLogger(t), 20*time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": hasDeadline})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), response.ErrCodeTimeout)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}
