// Package permission holds the access rules applied around every handler.
// Request-level checks gate unsafe methods on authentication, object-level
// checks resolve admin, moderator and author authority in that order.
package permission

import (
	"context"
	"net/http"

	"review-hub/internal/data/entity"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
)

// Principal is the actor behind a request, anonymous or authenticated.
type Principal struct {
	UserID        uuid.UUID
	Username      string
	Role          entity.Role
	Authenticated bool
}

func Anonymous() Principal {
	return Principal{}
}

// FromContext rebuilds the principal set by the auth middleware.
// Returns an anonymous principal when no token was presented.
func FromContext(ctx context.Context) Principal {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Anonymous()
	}

	username, _ := utils.GetUsernameFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return Principal{
		UserID:        userID,
		Username:      username,
		Role:          entity.Role(role),
		Authenticated: true,
	}
}

func (p Principal) IsAdmin() bool {
	return p.Authenticated && p.Role.AtLeast(entity.RoleAdmin)
}

func (p Principal) IsModerator() bool {
	return p.Authenticated && p.Role.AtLeast(entity.RoleModerator)
}

// ObjectKind is an explicit discriminant for object-level checks.
type ObjectKind int

const (
	KindUser ObjectKind = iota
	KindCategory
	KindGenre
	KindTitle
	KindReview
	KindComment
)

// Object is the minimal view of a target object the rules need.
type Object struct {
	Kind     ObjectKind
	AuthorID uuid.UUID
}

// SafeMethod reports whether the HTTP verb is read-only.
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// AuthorOrReadOnly is the request-level check: safe methods pass for anyone,
// unsafe methods require an authenticated principal.
func AuthorOrReadOnly(p Principal, method string) bool {
	return SafeMethod(method) || p.Authenticated
}

// CanActOnObject is the object-level check. Order matters: admin first,
// then moderator on reviews and comments, then author-or-safe.
func CanActOnObject(p Principal, method string, obj Object) bool {
	if p.IsAdmin() {
		return true
	}

	if (obj.Kind == KindReview || obj.Kind == KindComment) && p.IsModerator() {
		return true
	}

	return (p.Authenticated && p.UserID == obj.AuthorID) || SafeMethod(method)
}

// AdminOnly gates user-management operations.
func AdminOnly(p Principal) bool {
	return p.IsAdmin()
}

// AdminOrReadOnly allows safe methods unconditionally, unsafe methods
// only for an authenticated admin.
func AdminOrReadOnly(p Principal, method string) bool {
	if SafeMethod(method) {
		return true
	}
	return p.IsAdmin()
}
