package usecase

import (
	"context"
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

type TitleService interface {
	ListTitles(ctx context.Context, filter repository.TitleFilter, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitle(ctx context.Context, titleID string) (*response.TitleResponse, error)
	CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

// ListTitles is public. Filters combine with AND.
func (s *titleService) ListTitles(ctx context.Context, filter repository.TitleFilter, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.FindAll(ctx, filter, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list titles", zap.Error(err))
		return nil, fmt.Errorf("list titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count titles", zap.Error(err))
		return nil, fmt.Errorf("count titles: %w", err)
	}

	items := make([]response.TitleResponse, 0, len(titles))
	for _, t := range titles {
		resp, err := s.buildResponse(ctx, t)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *titleService) GetTitle(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, title)
}

func (s *titleService) CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodPost); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if req.Year > time.Now().Year() {
		return nil, fmt.Errorf("%w: year cannot be in the future", apperrors.ErrValidation)
	}

	category, err := s.repo.Category.FindBySlug(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.Category)
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  category.ID,
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create title: %w", err)
	}

	if err := s.attachGenres(ctx, title.ID, genres); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name))

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID string, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodPatch); err != nil {
		return nil, err
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if *req.Year > time.Now().Year() {
			return nil, fmt.Errorf("%w: year cannot be in the future", apperrors.ErrValidation)
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.repo.Category.FindBySlug(ctx, *req.Category)
		if err != nil {
			return nil, fmt.Errorf("find category: %w", err)
		}
		if category == nil {
			return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, *req.Category)
		}
		title.CategoryID = category.ID
	}

	title.UpdatedAt = time.Now()
	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.String("title_id", title.ID.String()))
		return nil, fmt.Errorf("update title: %w", err)
	}

	// A genre list in the request replaces the whole set.
	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.repo.TitleGenre.DeleteByTitleID(ctx, title.ID); err != nil {
			return nil, fmt.Errorf("reset title genres: %w", err)
		}
		if err := s.attachGenres(ctx, title.ID, genres); err != nil {
			return nil, err
		}
	}

	return s.buildResponse(ctx, title)
}

func (s *titleService) DeleteTitle(ctx context.Context, titleID string) error {
	p := permission.FromContext(ctx)
	if err := gateWrite(p, http.MethodDelete); err != nil {
		return err
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		s.log.Error("Failed to delete title", zap.Error(err), zap.String("title_id", title.ID.String()))
		return fmt.Errorf("delete title: %w", err)
	}

	s.log.Info("Title deleted", zap.String("title_id", title.ID.String()))
	return nil
}

// findTitle treats a malformed id the same as a missing one.
func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := utils.ParseUUID(titleID)
	if err != nil {
		return nil, fmt.Errorf("%w: title %s", apperrors.ErrNotFound, titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", apperrors.ErrNotFound, titleID)
	}
	return title, nil
}

// resolveGenres maps slugs to genre records, rejecting unknown slugs.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}

	found := make(map[string]bool, len(genres))
	for _, g := range genres {
		found[g.Slug] = true
	}
	for _, slug := range slugs {
		if !found[slug] {
			return nil, fmt.Errorf("%w: unknown genre %s", apperrors.ErrValidation, slug)
		}
	}
	return genres, nil
}

func (s *titleService) attachGenres(ctx context.Context, titleID uuid.UUID, genres []*entity.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	links := make([]*entity.TitleGenre, 0, len(genres))
	for _, g := range genres {
		links = append(links, &entity.TitleGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			TitleID: titleID,
			GenreID: g.ID,
		})
	}

	if err := s.repo.TitleGenre.CreateBatch(ctx, links); err != nil {
		return fmt.Errorf("attach genres: %w", err)
	}
	return nil
}

func (s *titleService) buildResponse(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, title.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}

	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("find title genres: %w", err)
	}

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}
