// Package recipeservice implements the owner-scoped operations on recipe
// attributes. Every call takes the authenticated user; the owner on stored
// rows always comes from that user, never from the request body.
package recipeservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/validate"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/attrrepo"
	"github.com/ikaro-souza/recipe-app-api/pkg/logger"
)

type Repository interface {
	ListByOwner(context.Context, int) ([]models.Attribute, error)
	Create(context.Context, models.Attribute) (models.Attribute, error)
	Shutdown(context.Context) error
}

type Cache interface {
	GetList(ctx context.Context, table string, ownerID int) ([]models.Attribute, error)
	SetList(ctx context.Context, table string, ownerID int, attrs []models.Attribute) error
	Invalidate(ctx context.Context, table string, ownerID int) error
}

type RecipeService struct {
	tagRepo        Repository
	ingredientRepo Repository
	cache          Cache
	lg             logger.Logger
}

func New(tagRepo, ingredientRepo Repository, cache Cache, lg logger.Logger) *RecipeService {
	return &RecipeService{
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		cache:          cache,
		lg:             lg,
	}
}

func (rs *RecipeService) ListTags(ctx context.Context, owner models.User) ([]models.Attribute, error) {
	return rs.list(ctx, rs.tagRepo, attrrepo.TableTags, owner)
}

func (rs *RecipeService) CreateTag(ctx context.Context, owner models.User, req CreateAttributeRequest) (models.Attribute, error) {
	return rs.create(ctx, rs.tagRepo, attrrepo.TableTags, owner, req)
}

func (rs *RecipeService) ListIngredients(ctx context.Context, owner models.User) ([]models.Attribute, error) {
	return rs.list(ctx, rs.ingredientRepo, attrrepo.TableIngredients, owner)
}

func (rs *RecipeService) CreateIngredient(ctx context.Context, owner models.User, req CreateAttributeRequest) (models.Attribute, error) {
	return rs.create(ctx, rs.ingredientRepo, attrrepo.TableIngredients, owner, req)
}

func (rs *RecipeService) list(ctx context.Context, repo Repository, table string, owner models.User) ([]models.Attribute, error) {
	attrs, err := rs.cache.GetList(ctx, table, owner.ID)
	if err == nil {
		rs.lg.Info("cache hit")

		return attrs, nil
	}

	rs.lg.Info("cache missed")

	attrs, err = repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list error: %w", err)
	}

	if err := rs.cache.SetList(ctx, table, owner.ID, attrs); err != nil {
		rs.lg.Errorf("set %s cache error: %s", table, err.Error())
	}

	return attrs, nil
}

func (rs *RecipeService) create(ctx context.Context, repo Repository, table string,
	owner models.User, req CreateAttributeRequest,
) (models.Attribute, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Attribute{}, validate.FieldErrors{"name": "this field may not be blank"}
	}

	attr := models.Attribute{ //nolint:exhaustruct
		Name:   name,
		UserID: owner.ID,
	}

	attr, err := repo.Create(ctx, attr)
	if err != nil {
		return models.Attribute{}, fmt.Errorf("create error: %w", err)
	}

	if err := rs.cache.Invalidate(ctx, table, owner.ID); err != nil {
		rs.lg.Errorf("invalidate %s cache error: %s", table, err.Error())
	}

	return attr, nil
}

func (rs *RecipeService) Shutdown(ctx context.Context) error {
	if err := rs.tagRepo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tag repo error: %w", err)
	}

	if err := rs.ingredientRepo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown ingredient repo error: %w", err)
	}

	return nil
}
