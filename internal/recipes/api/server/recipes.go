package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/recipeservice"
)

// Список тегов пользователя
// (GET /recipes/tags/).
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.recipeService.ListTags(r.Context(), userFrom(r))
	if err != nil {
		handleError(w, fmt.Errorf("list tags error: %w", err), http.StatusInternalServerError)

		return
	}

	writeAttrs(w, attrs)
}

// Создание тега
// (POST /recipes/tags/).
func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req recipeservice.CreateAttributeRequest

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	attr, err := s.recipeService.CreateTag(r.Context(), userFrom(r), req)
	if err != nil {
		handleServiceError(w, err, http.StatusInternalServerError)

		return
	}

	writeCreatedAttr(w, attr)
}

// Список ингредиентов пользователя
// (GET /recipes/ingredients/).
func (s *Server) listIngredients(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.recipeService.ListIngredients(r.Context(), userFrom(r))
	if err != nil {
		handleError(w, fmt.Errorf("list ingredients error: %w", err), http.StatusInternalServerError)

		return
	}

	writeAttrs(w, attrs)
}

// Создание ингредиента
// (POST /recipes/ingredients/).
func (s *Server) createIngredient(w http.ResponseWriter, r *http.Request) {
	var req recipeservice.CreateAttributeRequest

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	attr, err := s.recipeService.CreateIngredient(r.Context(), userFrom(r), req)
	if err != nil {
		handleServiceError(w, err, http.StatusInternalServerError)

		return
	}

	writeCreatedAttr(w, attr)
}

func writeAttrs(w http.ResponseWriter, attrs []models.Attribute) {
	if attrs == nil {
		attrs = []models.Attribute{}
	}

	enc := json.NewEncoder(w)

	if err := enc.Encode(attrs); err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)
	}
}

func writeCreatedAttr(w http.ResponseWriter, attr models.Attribute) {
	bts, err := json.Marshal(attr)
	if err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(bts) //nolint:errcheck
}
