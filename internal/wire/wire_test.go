package wire_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"review-hub/internal/data/repository"
	"review-hub/internal/wire"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopMailer struct{}

func (noopMailer) SendConfirmationCode(ctx context.Context, to, code string) error { return nil }

// newTestApp wires the full router against a database mock with no
// expectations: every route under test must answer without touching
// the database.
func newTestApp(t *testing.T) (*wire.App, pgxmock.PgxPoolIface, *utils.Config) {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	config := &utils.Config{
		JWT:  utils.JWTConfig{Secret: "wire-test-secret", ExpiryHours: 1},
		Code: utils.CodeConfig{ExpiryHours: 24},
	}

	repo := repository.NewRepository(mockPool, zap.NewNop())
	app := wire.Wiring(repo, noopMailer{}, config, zap.NewNop())
	return app, mockPool, config
}

func doRequest(app *wire.App, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestRouting(t *testing.T) {
	t.Run("Should answer health checks", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should expose metrics", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		rec := doRequest(app, http.MethodGet, "/metrics", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Should answer 405 on category detail routes", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch} {
			rec := doRequest(app, method, "/api/categories/movies", "", "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		}
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should answer 405 on genre detail routes", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch} {
			rec := doRequest(app, method, "/api/genres/sci-fi", "", "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		}
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject anonymous category writes with 401", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodPost, "/api/categories",
			`{"name":"Movies","slug":"movies"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject non-admin category writes with 403", func(t *testing.T) {
		app, mockPool, config := newTestApp(t)

		token, _, err := utils.CreateAccessToken(config.JWT.Secret, time.Hour, uuid.New(), "reader", "user")
		require.NoError(t, err)

		rec := doRequest(app, http.MethodPost, "/api/categories",
			`{"name":"Movies","slug":"movies"}`, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should require authentication on user management", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodGet, "/api/users", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should answer 405 for deleting the own account", func(t *testing.T) {
		app, mockPool, config := newTestApp(t)

		token, _, err := utils.CreateAccessToken(config.JWT.Secret, time.Hour, uuid.New(), "reader", "user")
		require.NoError(t, err)

		rec := doRequest(app, http.MethodDelete, "/api/users/me", "", token)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject a malformed bearer token", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodGet, "/api/titles/garbage", "", "not-a-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should answer 404 for a malformed title id", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodGet, "/api/titles/garbage", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject an unreadable signup body", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodPost, "/api/auth/signup", "{not json", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject anonymous review writes with 401", func(t *testing.T) {
		app, mockPool, _ := newTestApp(t)

		rec := doRequest(app, http.MethodPost,
			"/api/titles/"+uuid.NewString()+"/reviews",
			`{"text":"Nice","score":8}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
