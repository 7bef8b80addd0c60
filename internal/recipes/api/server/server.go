package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/authservice"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/recipeservice"
	"github.com/ikaro-souza/recipe-app-api/pkg/logger"
)

type Server struct {
	serv          *http.Server
	recipeService RecipeService
	authService   AuthService
}

type RecipeService interface {
	ListTags(context.Context, models.User) ([]models.Attribute, error)
	CreateTag(context.Context, models.User, recipeservice.CreateAttributeRequest) (models.Attribute, error)
	ListIngredients(context.Context, models.User) ([]models.Attribute, error)
	CreateIngredient(context.Context, models.User, recipeservice.CreateAttributeRequest) (models.Attribute, error)
	Shutdown(context.Context) error
}

type AuthService interface {
	Register(context.Context, authservice.RegisterRequest) (models.User, error)
	Login(context.Context, authservice.LoginRequest) (string, error)
	Authenticate(context.Context, string) (models.User, error)
	Update(context.Context, models.User, authservice.UpdateUserRequest) (models.User, error)
}

func New(cfg config.Server, rs RecipeService, authService AuthService, lg logger.Logger) *Server {
	var s Server

	s.recipeService = rs
	s.authService = authService

	serv := &http.Server{ //nolint:exhaustruct
		Addr:         cfg.Addr,
		Handler:      s.routes(lg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	s.serv = serv

	return &s
}

func (s *Server) routes(lg logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware(lg))

	r.Post("/users/create/", s.createUser)
	r.Post("/users/token/", s.createToken)

	r.Group(func(r chi.Router) {
		r.Use(s.authRequired)

		r.Get("/users/", s.manageUser)
		r.Patch("/users/", s.updateUser)

		r.Get("/recipes/tags/", s.listTags)
		r.Post("/recipes/tags/", s.createTag)
		r.Get("/recipes/ingredients/", s.listIngredients)
		r.Post("/recipes/ingredients/", s.createIngredient)
	})

	return r
}

// Handler exposes the routing table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.serv.Handler
}

func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error)

	go func() {
		if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			close(errCh)
		}
	}()

	select {
	case <-ctx.Done():
		ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
		defer cancel()

		if err := s.Shutdown(ctxS); err != nil { //nolint:contextcheck
			return fmt.Errorf("context error: %w server error %w", ctxS.Err(), err)
		}

		if !errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("context cancelled error: %w", ctx.Err())
		}

		return nil
	case err := <-errCh:
		return fmt.Errorf("listen and serve error: %w", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctxS, cancel := context.WithTimeout(ctx, s.serv.IdleTimeout)
	defer cancel()

	if err := s.serv.Shutdown(ctxS); err != nil {
		return fmt.Errorf("shutdown server error: %w", err)
	}

	return nil
}
