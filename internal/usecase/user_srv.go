package usecase

import (
	"context"
	"fmt"
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

// SelfAlias is the path segment that resolves to the authenticated user.
const SelfAlias = "me"

type UserService interface {
	ListUsers(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, username string) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context, search string, pagination *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	p := permission.FromContext(ctx)
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	users, err := s.users.FindAll(ctx, search, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, response.UserToResponse(u))
	}

	return response.NewPaginatedResponse(items, pagination.Page, pagination.PerPage, total), nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	p := permission.FromContext(ctx)
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", apperrors.ErrValidation)
	}

	existing, err = s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrValidation)
	}

	role := entity.RoleUser
	if req.Role != "" {
		role = entity.Role(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
		Confirmed: false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, username string) (*response.UserResponse, error) {
	p := permission.FromContext(ctx)

	user, err := s.resolveUser(ctx, p, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	p := permission.FromContext(ctx)

	user, err := s.resolveUser(ctx, p, username)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrValidation)
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	// Only admins may change roles. A non-admin editing their own
	// profile has the role field silently ignored.
	if req.Role != nil && p.IsAdmin() {
		user.Role = entity.Role(*req.Role)
	}

	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("username", user.Username))
		return nil, fmt.Errorf("update user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	p := permission.FromContext(ctx)

	if username == SelfAlias {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrMethodNotAllowed)
	}
	if err := requireAdmin(p); err != nil {
		return err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("username", username))
	return nil
}

// resolveUser maps a path username to a user record, honoring the self
// alias. Admin rights are required for anyone else's record.
func (s *userService) resolveUser(ctx context.Context, p permission.Principal, username string) (*entity.User, error) {
	if username == SelfAlias {
		if !p.Authenticated {
			return nil, fmt.Errorf("%w: authentication required", apperrors.ErrUnauthenticated)
		}
		username = p.Username
	} else if err := requireAdmin(p); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
	}
	return user, nil
}
