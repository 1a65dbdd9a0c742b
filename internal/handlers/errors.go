package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/campwright/campwright/internal/service"
)

// writeError is the single place service errors become status codes.
// Internal detail is logged here and never rendered to the client.
func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrCampgroundNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrStorage):
		log.Printf("storage error: %v", err)
		http.Error(w, service.ErrStorage.Error(), http.StatusBadGateway)
	case errors.Is(err, service.ErrPersistence):
		log.Printf("persistence error: %v", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
	default:
		log.Printf("unexpected error: %v", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
	}
}
