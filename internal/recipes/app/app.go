package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/api/server"
	ac "github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/attrcache/redis"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/attrrepo"
	ar "github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/attrrepo/postgres"
	ur "github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/userrepo/postgres"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/authservice"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/recipeservice"
	"github.com/ikaro-souza/recipe-app-api/pkg/logger"
)

type Server interface {
	Start(context.Context) error
	Shutdown(context.Context) error
}

type RecipesApp struct {
	s   Server
	lg  logger.Logger
	cfg config.Config
}

func New(ctx context.Context, cfg config.Config) (RecipesApp, error) {
	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("can't get logger error: %w", err)
	}

	userRepo, err := ur.New(ctx, cfg.PostgresDB)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("postgres user repo initializing error: %w", err)
	}

	tagRepo, err := ar.New(ctx, cfg.PostgresDB, attrrepo.TableTags)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("postgres tag repo initializing error: %w", err)
	}

	ingredientRepo, err := ar.New(ctx, cfg.PostgresDB, attrrepo.TableIngredients)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("postgres ingredient repo initializing error: %w", err)
	}

	cache, err := ac.New(ctx, cfg.RedisCache)
	if err != nil {
		return RecipesApp{}, fmt.Errorf("redis attr cache initializing error: %w", err)
	}

	recipeService := recipeservice.New(tagRepo, ingredientRepo, cache, lg)

	authService := authservice.New(userRepo)

	s := server.New(cfg.Server, recipeService, authService, lg)

	return RecipesApp{
		s:   s,
		lg:  lg,
		cfg: cfg,
	}, nil
}

func (ra *RecipesApp) Run(ctx context.Context) {
	ra.lg.Infof("STARTED SERVER ON %s", ra.cfg.Server.Addr)

	go func() {
		if err := ra.s.Start(ctx); err != nil {
			ra.lg.Errorf("server start error: %s", err.Error())
			ctx.Done()

			return
		}
	}()

	<-ctx.Done()

	ctxS, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
	defer cancel()

	if err := ra.Stop(ctxS); err != nil { //nolint:contextcheck
		ra.lg.Errorf("server shutdown error: %s", err.Error())
	}
}

func (ra *RecipesApp) Stop(ctx context.Context) error {
	if err := ra.s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	ra.lg.Info("Shutdowned successfully")

	return nil
}
