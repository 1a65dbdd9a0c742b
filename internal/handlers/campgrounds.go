package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/campwright/campwright/internal/auth"
	"github.com/campwright/campwright/internal/service"
)

const maxUploadBytes = 32 << 20

type CampgroundHandler struct {
	svc      *service.CampgroundService
	sessions sessions.Store
}

func NewCampgroundHandler(svc *service.CampgroundService, store sessions.Store) *CampgroundHandler {
	return &CampgroundHandler{svc: svc, sessions: store}
}

// List handles GET /campgrounds. Public, no auth.
func (h *CampgroundHandler) List(w http.ResponseWriter, r *http.Request) {
	cgs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"campgrounds": cgs,
		"messages":    popFlashes(h.sessions, w, r),
	})
}

// Get handles GET /campgrounds/{id}. Public, no auth.
func (h *CampgroundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, service.ErrCampgroundNotFound)
		return
	}
	cg, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"campground": cg,
		"messages":   popFlashes(h.sessions, w, r),
	})
}

// Create handles POST /campgrounds.
func (h *CampgroundHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, files, err := parseCampgroundRequest(r)
	if err != nil {
		http.Error(w, "could not read form", http.StatusBadRequest)
		return
	}
	cg, err := h.svc.Create(r.Context(), auth.UserID(r.Context()), form, files)
	if err != nil {
		writeError(w, err)
		return
	}
	addFlash(h.sessions, w, r, "Successfully made a new campground!")
	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", cg.ID), http.StatusFound)
}

// Update handles PUT /campgrounds/{id}. Form values under deleteImages
// name the storage keys to drop.
func (h *CampgroundHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, service.ErrCampgroundNotFound)
		return
	}
	form, files, err := parseCampgroundRequest(r)
	if err != nil {
		http.Error(w, "could not read form", http.StatusBadRequest)
		return
	}
	deleteKeys := r.Form["deleteImages"]
	cg, err := h.svc.Update(r.Context(), auth.UserID(r.Context()), id, form, files, deleteKeys)
	if err != nil {
		writeError(w, err)
		return
	}
	addFlash(h.sessions, w, r, "Successfully updated campground!")
	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", cg.ID), http.StatusFound)
}

// Delete handles DELETE /campgrounds/{id}.
func (h *CampgroundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, service.ErrCampgroundNotFound)
		return
	}
	if err := h.svc.Delete(r.Context(), auth.UserID(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	addFlash(h.sessions, w, r, "Successfully deleted campground")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

func parseCampgroundRequest(r *http.Request) (service.CampgroundForm, []service.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return service.CampgroundForm{}, nil, err
	}

	form := service.CampgroundForm{
		Title:       r.FormValue("title"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}
	// A missing or non-numeric price is pushed below zero so the
	// validation gate reports it together with the other fields.
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		price = -1
	}
	form.Price = price

	var files []service.ImageUpload
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["image"] {
			f, err := fh.Open()
			if err != nil {
				return service.CampgroundForm{}, nil, err
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return service.CampgroundForm{}, nil, err
			}
			files = append(files, service.ImageUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return form, files, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("bad id %q", raw)
	}
	return uint(id), nil
}
