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

type CommentService interface {
	ListComments(ctx context.Context, titleID, reviewID string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetComment(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	CreateComment(ctx context.Context, titleID, reviewID string, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, titleID, reviewID, commentID string, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, titleID, reviewID, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) ListComments(ctx context.Context, titleID, reviewID string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("list comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		s.log.Error("Failed to count comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("count comments: %w", err)
	}

	items := make([]response.CommentResponse, 0, len(comments))
	for _, c := range comments {
		author, err := s.authorName(ctx, c.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.CommentToResponse(c, author))
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *commentService) GetComment(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorName(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) CreateComment(ctx context.Context, titleID, reviewID string, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	p := permission.FromContext(ctx)
	if !permission.AuthorOrReadOnly(p, http.MethodPost) {
		return nil, fmt.Errorf("%w: authentication required", apperrors.ErrUnauthenticated)
	}

	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewID: review.ID,
		AuthorID: p.UserID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", review.ID.String()),
		zap.String("author", p.Username))

	resp := response.CommentToResponse(comment, p.Username)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, titleID, reviewID, commentID string, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	p := permission.FromContext(ctx)

	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.gateObjectWrite(p, http.MethodPatch, comment.AuthorID); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment",
			zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("update comment: %w", err)
	}

	author, err := s.authorName(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, titleID, reviewID, commentID string) error {
	p := permission.FromContext(ctx)

	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if err := s.gateObjectWrite(p, http.MethodDelete, comment.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted", zap.String("comment_id", commentID))
	return nil
}

// gateObjectWrite applies the author-moderator-admin rule for comments.
func (s *commentService) gateObjectWrite(p permission.Principal, method string, authorID uuid.UUID) error {
	obj := permission.Object{Kind: permission.KindComment, AuthorID: authorID}
	if permission.CanActOnObject(p, method, obj) {
		return nil
	}
	if !p.Authenticated {
		return fmt.Errorf("%w: authentication required", apperrors.ErrUnauthenticated)
	}
	return fmt.Errorf("%w: not the comment author", apperrors.ErrForbidden)
}

// resolveReview walks the title-review path, returning not found when any
// segment is malformed, missing, or mismatched.
func (s *commentService) resolveReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	tid, err := utils.ParseUUID(titleID)
	if err != nil {
		return nil, fmt.Errorf("%w: title %s", apperrors.ErrNotFound, titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, tid)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", apperrors.ErrNotFound, titleID)
	}

	rid, err := utils.ParseUUID(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", apperrors.ErrNotFound, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, fmt.Errorf("%w: review %s", apperrors.ErrNotFound, reviewID)
	}
	return review, nil
}

func (s *commentService) resolveComment(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := utils.ParseUUID(commentID)
	if err != nil {
		return nil, fmt.Errorf("%w: comment %s", apperrors.ErrNotFound, commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, fmt.Errorf("%w: comment %s", apperrors.ErrNotFound, commentID)
	}
	return comment, nil
}

func (s *commentService) authorName(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("find comment author: %w", err)
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}
