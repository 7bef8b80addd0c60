package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/authservice"
)

// Регистрация пользователя
// (POST /users/create/).
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	var req authservice.RegisterRequest

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	u, err := s.authService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, http.StatusInternalServerError)

		return
	}

	resp := UserResponse{Email: u.Email, Name: u.Name}

	bts, err := json.Marshal(resp)
	if err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(bts) //nolint:errcheck
}

// Выдача токена по учетным данным
// (POST /users/token/).
func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	var req authservice.LoginRequest

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	token, err := s.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			handleError(w, err, http.StatusBadRequest)

			return
		}

		handleServiceError(w, err, http.StatusInternalServerError)

		return
	}

	resp := TokenResponse{Token: token}

	enc := json.NewEncoder(w)

	if err := enc.Encode(resp); err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}
}

// Данные аутентифицированного пользователя
// (GET /users/).
func (s *Server) manageUser(w http.ResponseWriter, r *http.Request) {
	u := userFrom(r)

	resp := UserResponse{Email: u.Email, Name: u.Name}

	enc := json.NewEncoder(w)

	if err := enc.Encode(resp); err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}
}

// Частичное обновление имени или пароля
// (PATCH /users/).
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var req authservice.UpdateUserRequest

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	u, err := s.authService.Update(r.Context(), userFrom(r), req)
	if err != nil {
		handleServiceError(w, err, http.StatusInternalServerError)

		return
	}

	resp := UserResponse{Email: u.Email, Name: u.Name}

	enc := json.NewEncoder(w)

	if err := enc.Encode(resp); err != nil {
		handleError(w, fmt.Errorf("encode error: %w", err), http.StatusInternalServerError)

		return
	}
}
