package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/campwright/campwright/internal/auth"
	"github.com/campwright/campwright/internal/service"
)

type ReviewHandler struct {
	svc      *service.ReviewService
	sessions sessions.Store
}

func NewReviewHandler(svc *service.ReviewService, store sessions.Store) *ReviewHandler {
	return &ReviewHandler{svc: svc, sessions: store}
}

// Create handles POST /campgrounds/{id}/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	campgroundID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, service.ErrCampgroundNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not read form", http.StatusBadRequest)
		return
	}
	// A missing or garbled rating stays zero and is reported by the
	// validation gate alongside any body violation.
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	form := service.ReviewForm{
		Rating: rating,
		Body:   r.FormValue("body"),
	}

	if _, err := h.svc.Create(r.Context(), auth.UserID(r.Context()), campgroundID, form); err != nil {
		writeError(w, err)
		return
	}
	addFlash(h.sessions, w, r, "Created new review!")
	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", campgroundID), http.StatusFound)
}

// Delete handles DELETE /campgrounds/{id}/reviews/{reviewID}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	campgroundID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, service.ErrCampgroundNotFound)
		return
	}
	reviewID, err := parseID(chi.URLParam(r, "reviewID"))
	if err != nil {
		writeError(w, service.ErrReviewNotFound)
		return
	}
	if err := h.svc.Delete(r.Context(), auth.UserID(r.Context()), campgroundID, reviewID); err != nil {
		writeError(w, err)
		return
	}
	addFlash(h.sessions, w, r, "Successfully deleted review")
	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", campgroundID), http.StatusFound)
}
