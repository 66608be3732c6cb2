package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null on the wire.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error builds a failure envelope; customMsg overrides the default text.
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// JSONOK writes a success envelope with HTTP 200.
func JSONOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, OK(data))
}

// JSONCreated writes a success envelope with HTTP 201.
func JSONCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, OK(data))
}

// JSONError picks the status from the domain error kind. Unknown errors
// fall through as 500 without leaking internals.
func JSONError(c *gin.Context, err error) {
	code := CodeServerError
	msg := ""
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = CodeNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrConflict):
		code = CodeConflict
		msg = err.Error()
	case errors.Is(err, domain.ErrUnavailable):
		code = CodeUnavailable
	}
	c.JSON(HTTPStatus(code), Error(code, msg))
}

// JSONBadRequest reports a malformed payload or path parameter.
func JSONBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Error(CodeBadRequest, msg))
}
