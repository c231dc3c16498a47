package usecase_test

import (
	"context"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes for the repository interfaces. Only the fields a
// test sets get called; an unset field panics and fails the test loudly.

type fakeUserRepo struct {
	CreateFn         func(ctx context.Context, user *entity.User) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	FindAllFn        func(ctx context.Context, search string, limit, offset int) ([]*entity.User, error)
	CountAllFn       func(ctx context.Context, search string) (int64, error)
	UpdateFn         func(ctx context.Context, user *entity.User) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.CreateFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.FindByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	return f.FindAllFn(ctx, search, limit, offset)
}

func (f *fakeUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	return f.CountAllFn(ctx, search)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return f.UpdateFn(ctx, user)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

type fakeCodeRepo struct {
	CreateFn          func(ctx context.Context, code *entity.ConfirmationCode) error
	FindLatestValidFn func(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error)
	MarkUsedFn        func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCodeRepo) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	return f.CreateFn(ctx, code)
}

func (f *fakeCodeRepo) FindLatestValid(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
	return f.FindLatestValidFn(ctx, userID)
}

func (f *fakeCodeRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return f.MarkUsedFn(ctx, id)
}

type fakeTitleRepo struct {
	CreateFn   func(ctx context.Context, title *entity.Title) error
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAllFn  func(ctx context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAllFn func(ctx context.Context, filter repository.TitleFilter) (int64, error)
	UpdateFn   func(ctx context.Context, title *entity.Title) error
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeTitleRepo) Create(ctx context.Context, title *entity.Title) error {
	return f.CreateFn(ctx, title)
}

func (f *fakeTitleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeTitleRepo) FindAll(ctx context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	return f.FindAllFn(ctx, filter, limit, offset)
}

func (f *fakeTitleRepo) CountAll(ctx context.Context, filter repository.TitleFilter) (int64, error) {
	return f.CountAllFn(ctx, filter)
}

func (f *fakeTitleRepo) Update(ctx context.Context, title *entity.Title) error {
	return f.UpdateFn(ctx, title)
}

func (f *fakeTitleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

type fakeReviewRepo struct {
	CreateFn               func(ctx context.Context, review *entity.Review) error
	FindByIDFn             func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByTitleIDFn        func(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByTitleIDFn       func(ctx context.Context, titleID uuid.UUID) (int64, error)
	FindByAuthorAndTitleFn func(ctx context.Context, authorID, titleID uuid.UUID) (*entity.Review, error)
	UpdateFn               func(ctx context.Context, review *entity.Review) error
	DeleteFn               func(ctx context.Context, id uuid.UUID) error
	GetTitleAverageScoreFn func(ctx context.Context, titleID uuid.UUID) (*float64, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return f.CreateFn(ctx, review)
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeReviewRepo) FindByTitleID(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	return f.FindByTitleIDFn(ctx, titleID, limit, offset)
}

func (f *fakeReviewRepo) CountByTitleID(ctx context.Context, titleID uuid.UUID) (int64, error) {
	return f.CountByTitleIDFn(ctx, titleID)
}

func (f *fakeReviewRepo) FindByAuthorAndTitle(ctx context.Context, authorID, titleID uuid.UUID) (*entity.Review, error) {
	return f.FindByAuthorAndTitleFn(ctx, authorID, titleID)
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return f.UpdateFn(ctx, review)
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeReviewRepo) GetTitleAverageScore(ctx context.Context, titleID uuid.UUID) (*float64, error) {
	return f.GetTitleAverageScoreFn(ctx, titleID)
}

type fakeCategoryRepo struct {
	CreateFn       func(ctx context.Context, category *entity.Category) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlugFn   func(ctx context.Context, slug string) (*entity.Category, error)
	FindAllFn      func(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error)
	CountAllFn     func(ctx context.Context, search string) (int64, error)
	DeleteBySlugFn func(ctx context.Context, slug string) error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return f.CreateFn(ctx, category)
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return f.FindBySlugFn(ctx, slug)
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	return f.FindAllFn(ctx, search, limit, offset)
}

func (f *fakeCategoryRepo) CountAll(ctx context.Context, search string) (int64, error) {
	return f.CountAllFn(ctx, search)
}

func (f *fakeCategoryRepo) DeleteBySlug(ctx context.Context, slug string) error {
	return f.DeleteBySlugFn(ctx, slug)
}

type fakeGenreRepo struct {
	CreateFn        func(ctx context.Context, genre *entity.Genre) error
	FindBySlugFn    func(ctx context.Context, slug string) (*entity.Genre, error)
	FindBySlugsFn   func(ctx context.Context, slugs []string) ([]*entity.Genre, error)
	FindByTitleIDFn func(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error)
	FindAllFn       func(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error)
	CountAllFn      func(ctx context.Context, search string) (int64, error)
	DeleteBySlugFn  func(ctx context.Context, slug string) error
}

func (f *fakeGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	return f.CreateFn(ctx, genre)
}

func (f *fakeGenreRepo) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	return f.FindBySlugFn(ctx, slug)
}

func (f *fakeGenreRepo) FindBySlugs(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	return f.FindBySlugsFn(ctx, slugs)
}

func (f *fakeGenreRepo) FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	return f.FindByTitleIDFn(ctx, titleID)
}

func (f *fakeGenreRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	return f.FindAllFn(ctx, search, limit, offset)
}

func (f *fakeGenreRepo) CountAll(ctx context.Context, search string) (int64, error) {
	return f.CountAllFn(ctx, search)
}

func (f *fakeGenreRepo) DeleteBySlug(ctx context.Context, slug string) error {
	return f.DeleteBySlugFn(ctx, slug)
}

type fakeTitleGenreRepo struct {
	CreateBatchFn     func(ctx context.Context, titleGenres []*entity.TitleGenre) error
	DeleteByTitleIDFn func(ctx context.Context, titleID uuid.UUID) error
}

func (f *fakeTitleGenreRepo) CreateBatch(ctx context.Context, titleGenres []*entity.TitleGenre) error {
	return f.CreateBatchFn(ctx, titleGenres)
}

func (f *fakeTitleGenreRepo) DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error {
	return f.DeleteByTitleIDFn(ctx, titleID)
}

type fakeMailer struct {
	SendFn func(ctx context.Context, to, code string) error
	Sent   []string
}

func (f *fakeMailer) SendConfirmationCode(ctx context.Context, to, code string) error {
	if f.SendFn != nil {
		if err := f.SendFn(ctx, to, code); err != nil {
			return err
		}
	}
	f.Sent = append(f.Sent, code)
	return nil
}
