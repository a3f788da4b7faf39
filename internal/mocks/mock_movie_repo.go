package mocks

import (
	"context"

	"github.com/cinebook/movie-booking-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc               func(ctx context.Context) ([]*domain.Movie, error)
	GetByIdFunc              func(ctx context.Context, id int64) (*domain.Movie, error)
	ExistsByTitleAndYearFunc func(ctx context.Context, title string, year int, excludeID int64) (bool, error)
	CreateFunc               func(ctx context.Context, movie *domain.Movie) error
	UpdateFunc               func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc               func(ctx context.Context, id int64) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID int64) (bool, error) {
	return m.ExistsByTitleAndYearFunc(ctx, title, year, excludeID)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
