package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind core.Kind
		want int
	}{
		{core.KindInvalidIdentifier, http.StatusBadRequest},
		{core.KindValidation, http.StatusBadRequest},
		{core.KindInvalidDate, http.StatusBadRequest},
		{core.KindDuplicateEmployeeID, http.StatusBadRequest},
		{core.KindDuplicateEmail, http.StatusBadRequest},
		{core.KindDuplicateAttendance, http.StatusBadRequest},
		{core.KindNoFieldsToUpdate, http.StatusBadRequest},
		{core.KindNotFound, http.StatusNotFound},
		{core.KindInternal, http.StatusInternalServerError},
		{core.Kind("Teapot"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.kind), string(tt.kind))
	}
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, Response, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)

	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return w, res, c
}

func TestRespondError(t *testing.T) {
	t.Run("client error hides nothing and adds no cause", func(t *testing.T) {
		w, res, c := respond(t, &core.Error{Kind: core.KindNotFound, Message: "Employee not found"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, res.Success)
		assert.Equal(t, "Employee not found", res.Message)
		assert.Empty(t, res.Error)
		assert.Len(t, c.Errors, 1)
	})

	t.Run("internal error carries the cause", func(t *testing.T) {
		err := &core.Error{Kind: core.KindInternal, Message: "Failed to fetch employees", Err: errors.New("connection reset")}
		w, res, _ := respond(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch employees", res.Message)
		assert.Equal(t, "connection reset", res.Error)
	})

	t.Run("foreign error is internal", func(t *testing.T) {
		w, res, _ := respond(t, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", res.Message)
		assert.Equal(t, "boom", res.Error)
	})
}

type bindTarget struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Status string `json:"status" binding:"omitempty,oneof=Present Absent"`
}

func bindError(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var target bindTarget
	return binding.JSON.Bind(req, &target)
}

func TestFormatBindingError(t *testing.T) {
	assert.Equal(t, "", FormatBindingError(nil))
	assert.Equal(t, "Request body is empty", FormatBindingError(bindError(t, "")))
	assert.Contains(t, FormatBindingError(bindError(t, `{"name": x}`)), "Invalid JSON at byte offset")
	assert.Equal(t, "Field 'name' should be of type string", FormatBindingError(bindError(t, `{"name": 1, "email": "a@x.com"}`)))
	assert.Equal(t, "Field 'name' is required, Field 'email' must be a valid email",
		FormatBindingError(bindError(t, `{"email": "nope"}`)))
	assert.Equal(t, "Field 'status' must be one of: Present, Absent",
		FormatBindingError(bindError(t, `{"name": "a", "email": "a@x.com", "status": "Late"}`)))
}
