package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		header string
		want   string
	}{
		{"query delete", http.MethodPost, "/campgrounds/1?_method=DELETE", "", http.MethodDelete},
		{"query put", http.MethodPost, "/campgrounds/1?_method=put", "", http.MethodPut},
		{"header", http.MethodPost, "/campgrounds/1", "DELETE", http.MethodDelete},
		{"plain post untouched", http.MethodPost, "/campgrounds", "", http.MethodPost},
		{"get never overridden", http.MethodGet, "/campgrounds?_method=DELETE", "", http.MethodGet},
		{"arbitrary method refused", http.MethodPost, "/campgrounds?_method=PATCH", "", http.MethodPost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Method
			}))
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-HTTP-Method-Override", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
