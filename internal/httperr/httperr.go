package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromBusiness resolve o status HTTP a partir do Kind do BusinessError.
// Erros de infra (não-business) viram 500 genérico, nunca conflito.
func FromBusiness(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, fallbackCode, fallbackMsg)
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, be.Message)
	case KindConflict:
		Conflict(c, be.Code, be.Message)
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindAuth:
		Unauthorized(c, be.Code, be.Message)
	case KindIllegalTransition:
		BadRequest(c, be.Code, be.Message)
	default:
		Internal(c, fallbackCode, fallbackMsg)
	}
}
