package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}

func TestTimeout_RequestCompletesInTime(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		handlerDelay time.Duration
		wantStatus   int
	}{
		{
			name:         "fast resolve completes",
			timeout:      time.Second,
			handlerDelay: 10 * time.Millisecond,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "zero delay request completes",
			timeout:      time.Second,
			handlerDelay: 0,
			wantStatus:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()

			cfg := TimeoutConfig{
				Timeout:      tt.timeout,
				ErrorMessage: "timeout",
			}

			router.Use(Timeout(cfg))
			router.POST("/resolve", func(c *gin.Context) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/resolve", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTimeout_SlowRequestGets504(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(Timeout(TimeoutConfig{
		Timeout:      30 * time.Millisecond,
		ErrorMessage: "Request timeout",
	}))
	router.GET("/stack-layout", func(c *gin.Context) {
		// Simulates a layout read stuck on a slow database.
		time.Sleep(200 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/stack-layout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "timeout")
}

func TestTimeoutWithDuration(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
	}{
		{
			name:    "1 second timeout",
			timeout: time.Second,
		},
		{
			name:    "5 second timeout",
			timeout: 5 * time.Second,
		},
		{
			name:    "100ms timeout",
			timeout: 100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()

			router.Use(TimeoutWithDuration(tt.timeout))
			router.GET("/topology/partner", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/topology/partner", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	hasDeadline := false
	router.Use(TimeoutWithDuration(time.Second))
	router.GET("/resolve", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/resolve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.True(t, hasDeadline, "handler should see the request deadline")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout_PanicInHandlerReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// The handler goroutine is out of Recovery's reach, so the timeout
	// middleware must answer the panic itself.
	router.Use(RequestID(), TimeoutWithDuration(time.Second))
	router.GET("/resolve", func(c *gin.Context) {
		panic("stack index out of range")
	})

	req := httptest.NewRequest(http.MethodGet, "/resolve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestTimeout_FastRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(TimeoutWithDuration(100 * time.Millisecond))
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Repeated fast requests must all pass untouched
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
