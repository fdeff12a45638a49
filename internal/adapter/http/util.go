package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cookbook/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// userPayload is the wire shape of a user: profile fields plus every recipe
// the user owns. Recipes stay flat (user_id only, no nested user).
type userPayload struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Bio      *string         `json:"bio"`
	ImageURL *string         `json:"image_url"`
	Recipes  []domain.Recipe `json:"recipes"`
}

// writeUser serializes user with its recipe list attached.
func (s *Server) writeUser(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	recipes, err := s.recipes.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	writeJSON(w, status, userPayload{
		ID:       user.ID,
		Username: user.Username,
		Bio:      user.Bio,
		ImageURL: user.ImageURL,
		Recipes:  recipes,
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie("session")
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
