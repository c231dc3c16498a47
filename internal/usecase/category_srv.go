package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"
	"review-hub/internal/permission"
	"review-hub/pkg/apperrors"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	ListCategories(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, slug string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		log:  log.With(zap.String("service", "category")),
	}
}

// ListCategories is public, no principal check needed.
func (s *categoryService) ListCategories(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categories.FindAll(ctx, search, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	total, err := s.categories.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("count categories: %w", err)
	}

	items := make([]response.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, response.CategoryToResponse(c))
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodPost); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, fmt.Errorf("%w: slug must contain only letters, digits, hyphens and underscores", apperrors.ErrValidation)
	}

	existing, err := s.categories.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: slug already in use", apperrors.ErrValidation)
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, slug string) error {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodDelete); err != nil {
		return err
	}

	if err := s.categories.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("slug", slug))
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("slug", slug))
	return nil
}
