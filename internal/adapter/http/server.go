// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"cookbook/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth    *app.AuthService
	recipes *app.RecipeService
	oidc    *OIDCConfig
}

// New creates a Server wired to the given application services. oidc may
// be nil when SSO is not configured.
func New(auth *app.AuthService, recipes *app.RecipeService, oidc *OIDCConfig) *Server {
	if oidc == nil {
		oidc = &OIDCConfig{}
	}
	return &Server{auth: auth, recipes: recipes, oidc: oidc}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/signup", s.handleSignup)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/check_session", s.handleCheckSession)

	mux.Handle("/recipes", s.requireSession(http.HandlerFunc(s.handleRecipes)))

	mux.HandleFunc("/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/sso/callback", s.handleSSOCallback)

	return s.loggingMiddleware(mux)
}
