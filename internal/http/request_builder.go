package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
	"github.com/guttosm/yard-service/internal/middleware"
)

// RequestBuilder wraps request body binding for a gin context.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the JSON request body into v, honoring binding tags.
func (b *RequestBuilder) Bind(v interface{}) error {
	return b.c.ShouldBindJSON(v)
}

// BuildRequest binds the request body into a fresh T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator is implemented by request DTOs that carry validation beyond what
// binding tags can express.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the request body and, when the DTO implements
// Validator, runs its validation. Handlers distinguish the two failure kinds
// by the error type: binding errors come from gin, validation errors are
// *dto.ValidationError.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// Envelope DTOs are pooled: every response allocates one otherwise, and the
// resolve endpoint is hot during EDI batch imports.
var (
	successPool = sync.Pool{
		New: func() interface{} { return &dto.SuccessResponse{} },
	}
	errorPool = sync.Pool{
		New: func() interface{} { return &dto.ErrorResponse{} },
	}
)

func borrowSuccess() *dto.SuccessResponse {
	resp, _ := successPool.Get().(*dto.SuccessResponse)
	if resp == nil {
		resp = &dto.SuccessResponse{}
	}
	return resp
}

func releaseSuccess(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

func borrowError() *dto.ErrorResponse {
	resp, _ := errorPool.Get().(*dto.ErrorResponse)
	if resp == nil {
		resp = &dto.ErrorResponse{}
	}
	return resp
}

func releaseError(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// ResponseBuilder writes the standard success and error envelopes, stamping
// the request ID and timestamp on every response.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := borrowSuccess()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so the DTO can go back to the pool
	// as soon as JSON returns.
	b.c.JSON(statusCode, resp)
	releaseSuccess(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// SuccessAccepted sends a 202 Accepted response with the given data.
func (b *ResponseBuilder) SuccessAccepted(data interface{}) {
	b.Success(http.StatusAccepted, data)
}

// Error sends the error envelope for a message key, translated into the
// caller's locale, and aborts the handler chain. A non-nil err is attached
// to the context so the error handler middleware logs it.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)
	b.writeError(statusCode, i18n.GetTranslator().Translate(messageKey, locale), err)
}

// ErrorWithMessage sends the error envelope with a literal message, skipping
// translation.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.writeError(statusCode, message, err)
}

func (b *ResponseBuilder) writeError(statusCode int, message string, err error) {
	resp := borrowError()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if ve, ok := err.(*dto.ValidationError); ok {
		resp.Details = map[string]string{ve.Field: ve.Message}
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	releaseError(resp)
}
