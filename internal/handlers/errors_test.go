package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campwright/campwright/internal/service"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&service.ValidationError{Fields: []service.FieldError{{Field: "title", Message: "is required"}}}, http.StatusBadRequest},
		{service.ErrNotAuthenticated, http.StatusUnauthorized},
		{service.ErrNotAuthorized, http.StatusForbidden},
		{service.ErrCampgroundNotFound, http.StatusNotFound},
		{service.ErrReviewNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: timeout", service.ErrStorage), http.StatusBadGateway},
		{fmt.Errorf("%w: deadlock", service.ErrPersistence), http.StatusInternalServerError},
		{fmt.Errorf("surprise"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, tt.err)
		assert.Equal(t, tt.status, rec.Code, "error %v", tt.err)
		assert.NotEmpty(t, rec.Body.String())
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, fmt.Errorf("%w: dial tcp 10.0.0.3:5432", service.ErrPersistence))
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
