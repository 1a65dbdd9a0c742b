package auth

import (
	"context"
	"net/http"

	"github.com/markbates/goth/gothic"
)

type contextKey string

const userIDKey contextKey = "userID"

const sessionName = "_campwright_session"

// WithUser attaches the signed-in user's id to the request context. A
// request without a session passes through with no principal; the
// service layer decides what that means for each action.
func WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := gothic.Store.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if id, ok := session.Values["user_id"].(uint); ok && id != 0 {
			ctx := context.WithValue(r.Context(), userIDKey, id)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects requests that carry no principal.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == 0 {
			http.Error(w, "you must be signed in first", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the principal for the request, zero when signed out.
func UserID(ctx context.Context) uint {
	id, _ := ctx.Value(userIDKey).(uint)
	return id
}
