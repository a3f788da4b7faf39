package domain

import (
	"context"
	"time"
)

const (
	MinMovieYear   = 1900
	MaxTitleLength = 100
	MinRating      = 0
	MaxRating      = 10
)

// Genres is the fixed set of genres a movie can be filed under.
var Genres = []string{
	"Action", "Comedy", "Drama", "Horror", "Romance", "Thriller", "Sci-Fi",
	"Fantasy", "Adventure", "Animation", "Documentary", "Crime", "Mystery",
	"War", "Western", "Musical", "Biography", "History", "Sport", "Family",
}

func IsValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}

	return false
}

// MaxMovieYear returns the upper bound for a movie's release year.
// Listings may be created ahead of release, so a few years of slack is allowed.
func MaxMovieYear() int {
	return time.Now().Year() + 5
}

type Movie struct {
	ID          int64
	Title       string
	Year        int
	Genre       string
	Ratings     float64
	PosterImage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int64) (*Movie, error)
	ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID int64) (bool, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int64) error
}
