package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/markbates/goth/gothic"
	"gorm.io/gorm"

	"github.com/campwright/campwright/internal/auth"
	"github.com/campwright/campwright/models"
)

// UserLoginHandler completes the OAuth dance, finds or creates the
// matching user row and stores their id on the session.
func UserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	user, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		log.Println("complete auth:", err)
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	var dbUser models.User
	if err := db.Where("email = ?", user.Email).First(&dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dbUser = models.User{
				Name:  user.Name,
				Email: user.Email,
			}
			if err := db.Create(&dbUser).Error; err != nil {
				log.Println("failed to create user:", err)
				http.Error(w, "failed to create user", http.StatusInternalServerError)
				return
			}
		} else {
			log.Println("database error:", err)
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}
	}

	session, err := gothic.Store.Get(r, sessionName)
	if err != nil {
		log.Println("failed to get session:", err)
		http.Error(w, "failed to get session", http.StatusInternalServerError)
		return
	}
	session.Values["user_id"] = dbUser.ID
	session.AddFlash("Welcome back, " + dbUser.Name + "!")

	if err := session.Save(r, w); err != nil {
		log.Println("failed to save session:", err)
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

// GetUserHandler returns the signed-in user with their campgrounds.
func GetUserHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	id := auth.UserID(r.Context())
	if id == 0 {
		http.Error(w, "you must be signed in first", http.StatusUnauthorized)
		return
	}

	var user models.User
	result := db.Preload("Campgrounds").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Println("database error:", result.Error)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
