package adapthttp

import (
	"errors"
	"net/http"

	"cookbook/internal/app"
	"cookbook/internal/domain"
)

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecipes(w, r)
	case http.MethodPost:
		s.createRecipe(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	recipes, err := s.recipes.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recipe, err := s.recipes.Create(r.Context(), user.ID, req.Title, req.Instructions, req.MinutesToComplete)
	if errors.Is(err, app.ErrInvalidRecipe) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		// Store-level failures (e.g. a check constraint) abort the write;
		// the caller sees the underlying message and must resubmit.
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}
