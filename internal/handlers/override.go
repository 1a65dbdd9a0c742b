package handlers

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms tunnel PUT and DELETE through POST via
// a _method query parameter or the X-HTTP-Method-Override header. Only
// those two methods may be assumed.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := r.URL.Query().Get("_method")
			if m == "" {
				m = r.Header.Get("X-HTTP-Method-Override")
			}
			switch strings.ToUpper(m) {
			case http.MethodPut, http.MethodDelete:
				r.Method = strings.ToUpper(m)
			}
		}
		next.ServeHTTP(w, r)
	})
}
