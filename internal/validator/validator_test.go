package validator

import (
	"fmt"
	"testing"

	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieFixture struct {
	Title   string   `validate:"required,max=100"`
	Year    *int     `validate:"required,year_range"`
	Genre   string   `validate:"required,genre"`
	Ratings *float64 `validate:"required,min=0,max=10"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCustomValidations(t *testing.T) {
	v := NewValidator()

	valid := movieFixture{
		Title:   "Heat",
		Year:    intPtr(1995),
		Genre:   "Crime",
		Ratings: floatPtr(8.3),
	}

	tests := []struct {
		name        string
		mutate      func(*movieFixture)
		wantMessage string
	}{
		{
			name:   "valid input",
			mutate: func(m *movieFixture) {},
		},
		{
			name:        "year below the floor",
			mutate:      func(m *movieFixture) { m.Year = intPtr(1899) },
			wantMessage: fmt.Sprintf("Year must be between %d and %d", domain.MinMovieYear, domain.MaxMovieYear()),
		},
		{
			name:        "year beyond the horizon",
			mutate:      func(m *movieFixture) { m.Year = intPtr(domain.MaxMovieYear() + 1) },
			wantMessage: fmt.Sprintf("Year must be between %d and %d", domain.MinMovieYear, domain.MaxMovieYear()),
		},
		{
			name:        "unknown genre",
			mutate:      func(m *movieFixture) { m.Genre = "Noir" },
			wantMessage: "Genre must be a valid genre",
		},
		{
			name:        "rating above the scale",
			mutate:      func(m *movieFixture) { m.Ratings = floatPtr(10.1) },
			wantMessage: "Ratings must be at most 10",
		},
		{
			name:        "rating below zero",
			mutate:      func(m *movieFixture) { m.Ratings = floatPtr(-0.1) },
			wantMessage: "Ratings must be at least 0",
		},
		{
			name:        "missing title",
			mutate:      func(m *movieFixture) { m.Title = "" },
			wantMessage: "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := valid
			tt.mutate(&fixture)

			err := v.Struct(fixture)

			if tt.wantMessage == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, ValidationMessages(err), tt.wantMessage)
		})
	}
}

func TestSeatIDValidation(t *testing.T) {
	v := NewValidator()

	type holdFixture struct {
		Seats []string `validate:"required,min=1,max=10,unique,dive,seat_id"`
	}

	tests := []struct {
		name    string
		seats   []string
		wantErr bool
	}{
		{name: "valid seats", seats: []string{"A1", "J12"}, wantErr: false},
		{name: "seat outside the layout", seats: []string{"K1"}, wantErr: true},
		{name: "duplicate seats", seats: []string{"A1", "A1"}, wantErr: true},
		{name: "eleven seats", seats: []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "A11"}, wantErr: true},
		{name: "empty selection", seats: []string{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(holdFixture{Seats: tt.seats})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
