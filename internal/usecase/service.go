package usecase

import (
	"fmt"
	"regexp"

	"review-hub/internal/data/repository"
	"review-hub/internal/permission"
	"review-hub/pkg/apperrors"
	"review-hub/pkg/mailer"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, mail, config, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}

// slugPattern is the allowed shape for category and genre slugs.
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// gateWrite rejects the unsafe method unless the principal is an admin.
// Anonymous callers get an authentication error, everyone else a permission error.
func gateWrite(p permission.Principal, method string) error {
	if permission.AdminOrReadOnly(p, method) {
		return nil
	}
	if !p.Authenticated {
		return fmt.Errorf("%w: admin access needed", apperrors.ErrUnauthenticated)
	}
	return fmt.Errorf("%w: admin access needed", apperrors.ErrForbidden)
}

// requireAdmin gates user-management operations on the admin role.
func requireAdmin(p permission.Principal) error {
	if permission.AdminOnly(p) {
		return nil
	}
	if !p.Authenticated {
		return fmt.Errorf("%w: admin access needed", apperrors.ErrUnauthenticated)
	}
	return fmt.Errorf("%w: admin access needed", apperrors.ErrForbidden)
}
