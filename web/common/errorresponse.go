package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/core"
)

const internalServerError = "Internal server error"

func NewErrorResponse(message string) *Response {
	return &Response{Success: false, Message: message}
}

var statusByKind = map[core.Kind]int{
	core.KindInvalidIdentifier:   http.StatusBadRequest,
	core.KindValidation:          http.StatusBadRequest,
	core.KindInvalidDate:         http.StatusBadRequest,
	core.KindDuplicateEmployeeID: http.StatusBadRequest,
	core.KindDuplicateEmail:      http.StatusBadRequest,
	core.KindDuplicateAttendance: http.StatusBadRequest,
	core.KindNoFieldsToUpdate:    http.StatusBadRequest,
	core.KindNotFound:            http.StatusNotFound,
	core.KindInternal:            http.StatusInternalServerError,
}

// StatusFor maps an error kind to its HTTP status. Unknown kinds are 500.
func StatusFor(kind core.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondError writes the envelope for err and records it on the context so
// the logging and alerting middlewares see it. Internal errors expose the
// underlying cause in the error field.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := core.KindOf(err)
	status := StatusFor(kind)
	res := NewErrorResponse(internalServerError)

	var e *core.Error
	if errors.As(err, &e) {
		res.Message = e.Message
		if status == http.StatusInternalServerError && e.Err != nil {
			res.Error = e.Err.Error()
		}
	} else if status == http.StatusInternalServerError {
		res.Error = err.Error()
	}

	c.JSON(status, res)
}

// RespondBindingError answers a request whose body could not be bound.
func RespondBindingError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
}
