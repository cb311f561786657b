package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
	"github.com/guttosm/yard-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSONContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		wantContainers int
		wantError      bool
	}{
		{
			name:           "valid resolve body",
			body:           `{"containers": [{"id": "MSKU1234567", "sizeClass": "40ft", "locationCode": "S3-R2-H1"}]}`,
			wantContainers: 1,
			wantError:      false,
		},
		{
			name:      "malformed JSON",
			body:      `{"containers": invalid}`,
			wantError: true,
		},
		{
			name:      "empty body",
			body:      ``,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := postJSONContext(t, tt.body)

			var req dto.ResolveRequest
			err := NewRequestBuilder(c).Bind(&req)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, req.Containers, tt.wantContainers)
			}
		})
	}
}

func TestBuildRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the bound DTO", func(t *testing.T) {
		c, _ := postJSONContext(t, `{"yardId": "north", "containers": []}`)

		req, err := BuildRequest[dto.ResolveRequest](c)

		assert.NoError(t, err)
		require.NotNil(t, req)
		assert.Equal(t, "north", req.YardID)
	})

	t.Run("nil on malformed JSON", func(t *testing.T) {
		c, _ := postJSONContext(t, `{"yardId": invalid}`)

		req, err := BuildRequest[dto.ResolveRequest](c)

		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		wantError      bool
		wantValidation bool
	}{
		{
			name:      "valid request",
			body:      `{"containers": [{"id": "MSKU1234567", "sizeClass": "40ft"}]}`,
			wantError: false,
		},
		{
			name:           "container without id fails validation",
			body:           `{"containers": [{"sizeClass": "40ft"}]}`,
			wantError:      true,
			wantValidation: true,
		},
		{
			name:      "malformed JSON fails binding",
			body:      `{"containers": [}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := postJSONContext(t, tt.body)

			req, err := BuildRequestAndValidate[dto.ResolveRequest](c)

			if !tt.wantError {
				assert.NoError(t, err)
				require.NotNil(t, req)
				assert.Equal(t, "MSKU1234567", req.Containers[0].ID)
				return
			}

			assert.Error(t, err)
			assert.Nil(t, req)
			_, isValidation := err.(*dto.ValidationError)
			assert.Equal(t, tt.wantValidation, isValidation,
				"validation failures and binding failures must stay distinguishable")
		})
	}
}

func TestResponseBuilder_ErrorTranslatesKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, errorResp.Error)
	assert.NotEmpty(t, errorResp.Message)
	assert.NotEmpty(t, errorResp.RequestID)
}

func TestResponseBuilder_ErrorWithMessageIsLiteral(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, "stack number must be positive", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, "stack number must be positive", errorResp.Message)
}

func TestResponseBuilder_PooledEnvelopesDoNotLeak(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First response populates a pooled DTO.
	w1 := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(w1)
	c1.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c1.Set(string(middleware.RequestIDKey), "req-first")
	NewResponseBuilder(c1).SuccessOK(map[string]int{"unit_count": 7})

	// Second response likely reuses it; nothing from the first may bleed in.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Set(string(middleware.RequestIDKey), "req-second")
	NewResponseBuilder(c2).SuccessOK(nil)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Equal(t, "req-second", resp.RequestID)
	assert.Nil(t, resp.Data)
}
