// Package middleware carries the HTTP middleware shared by all form
// handlers.
package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

type contextKey string

// CSRFTokenKey is the request-context key under which the CSRF token is
// stored for templates.
const CSRFTokenKey contextKey = "csrf_token"

func generateToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// CSRF issues a per-session token cookie, validates it on every POST and
// injects it into the request context so templates can embed it in forms.
func CSRF(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("csrf_token")
		token := ""
		if err != nil || cookie.Value == "" {
			token = generateToken()
			http.SetCookie(w, &http.Cookie{
				Name:     "csrf_token",
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		} else {
			token = cookie.Value
		}

		if r.Method == http.MethodPost {
			reqToken := r.FormValue("csrf_token")
			if reqToken == "" {
				reqToken = r.Header.Get("X-CSRF-Token")
			}
			if reqToken != token {
				http.Error(w, "Invalid CSRF Token", http.StatusForbidden)
				return
			}
		}

		ctx := context.WithValue(r.Context(), CSRFTokenKey, token)
		next(w, r.WithContext(ctx))
	}
}
