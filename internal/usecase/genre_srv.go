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

type GenreService interface {
	ListGenres(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, slug string) error
}

type genreService struct {
	genres repository.GenreRepository
	log    *zap.Logger
}

func NewGenreService(genres repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genres: genres,
		log:  log.With(zap.String("service", "genre")),
	}
}

// ListGenres is public, no principal check needed.
func (s *genreService) ListGenres(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genres.FindAll(ctx, search, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}

	total, err := s.genres.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count genres", zap.Error(err))
		return nil, fmt.Errorf("count genres: %w", err)
	}

	items := make([]response.GenreResponse, 0, len(genres))
	for _, g := range genres {
		items = append(items, response.GenreToResponse(g))
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodPost); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, fmt.Errorf("%w: slug must contain only letters, digits, hyphens and underscores", apperrors.ErrValidation)
	}

	existing, err := s.genres.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: slug already in use", apperrors.ErrValidation)
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.genres.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, slug string) error {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodDelete); err != nil {
		return err
	}

	if err := s.genres.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("slug", slug))
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}
