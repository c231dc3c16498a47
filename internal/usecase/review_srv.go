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

type ReviewService interface {
	ListReviews(ctx context.Context, titleID string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReview(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, titleID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, titleID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, titleID, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, titleID string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		author, err := s.authorName(ctx, r.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.ReviewToResponse(r, author))
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *reviewService) GetReview(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	_, review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorName(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, titleID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	p := permission.FromContext(ctx)
	if !permission.AuthorOrReadOnly(p, http.MethodPost) {
		return nil, fmt.Errorf("%w: authentication required", apperrors.ErrUnauthenticated)
	}

	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Review.FindByAuthorAndTitle(ctx, p.UserID, title.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: title already reviewed by this author", apperrors.ErrValidation)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TitleID:  title.ID,
		AuthorID: p.UserID,
		Score:    req.Score,
		Text:     req.Text,
	}

	// The unique constraint on (title_id, author_id) backs up the
	// pre-check under concurrent requests.
	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err), zap.String("title_id", titleID))
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", title.ID.String()),
		zap.String("author", p.Username))

	resp := response.ReviewToResponse(review, p.Username)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, titleID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	p := permission.FromContext(ctx)

	_, review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.gateObjectWrite(p, http.MethodPatch, review.AuthorID); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review: %w", err)
	}

	author, err := s.authorName(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, titleID, reviewID string) error {
	p := permission.FromContext(ctx)

	_, review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if err := s.gateObjectWrite(p, http.MethodDelete, review.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewID))
	return nil
}

// gateObjectWrite applies the author-moderator-admin rule for reviews.
func (s *reviewService) gateObjectWrite(p permission.Principal, method string, authorID uuid.UUID) error {
	obj := permission.Object{Kind: permission.KindReview, AuthorID: authorID}
	if permission.CanActOnObject(p, method, obj) {
		return nil
	}
	if !p.Authenticated {
		return fmt.Errorf("%w: authentication required", apperrors.ErrUnauthenticated)
	}
	return fmt.Errorf("%w: not the review author", apperrors.ErrForbidden)
}

// resolveTitle treats a malformed id the same as a missing one.
func (s *reviewService) resolveTitle(ctx context.Context, titleID string) (*entity.Title, error) {
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

// resolveReview scopes the review to its title: a review reached through
// the wrong title path is a 404, not a leak.
func (s *reviewService) resolveReview(ctx context.Context, titleID, reviewID string) (*entity.Title, *entity.Review, error) {
	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, nil, err
	}

	id, err := utils.ParseUUID(reviewID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: review %s", apperrors.ErrNotFound, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, nil, fmt.Errorf("%w: review %s", apperrors.ErrNotFound, reviewID)
	}
	return title, review, nil
}

func (s *reviewService) authorName(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("find review author: %w", err)
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}
