package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/domain"
)

const (
	MsgInvalidMovieID      = "Invalid movie ID format"
	MsgMovieNotFound       = "Movie not found"
	MsgDuplicateMovie      = "Movie with this title and year already exists"
	MsgDuplicateOtherMovie = "Another movie with this title and year already exists"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Success: true,
		Count:   len(movies),
		Data:    toAPIMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, MsgInvalidMovieID)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieResponse{
		Success: true,
		Data:    toAPIMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// The unique index backstops this pre-check; two concurrent creates can
	// both pass it and one then fails at the constraint.
	exists, err := app.movieRepo.ExistsByTitleAndYear(r.Context(), input.Title, *input.Year, 0)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if exists {
		app.badRequestResponse(w, r, MsgDuplicateMovie)
		return
	}

	movie := domain.Movie{
		Title:       input.Title,
		Year:        *input.Year,
		Genre:       input.Genre,
		Ratings:     *input.Ratings,
		PosterImage: input.PosterImage,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMovie):
			app.badRequestResponse(w, r, MsgDuplicateMovie)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieResponse{
		Success: true,
		Message: "Movie created successfully",
		Data:    toAPIMovie(&movie),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, MsgInvalidMovieID)
		return
	}

	var input api.MovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	exists, err := app.movieRepo.ExistsByTitleAndYear(r.Context(), input.Title, *input.Year, id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if exists {
		app.badRequestResponse(w, r, MsgDuplicateOtherMovie)
		return
	}

	movie.Title = input.Title
	movie.Year = *input.Year
	movie.Genre = input.Genre
	movie.Ratings = *input.Ratings
	if input.PosterImage != "" {
		movie.PosterImage = input.PosterImage
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		case errors.Is(err, domain.ErrDuplicateMovie):
			app.badRequestResponse(w, r, MsgDuplicateOtherMovie)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieResponse{
		Success: true,
		Message: "Movie updated successfully",
		Data:    toAPIMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, MsgInvalidMovieID)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieResponse{
		Success: true,
		Message: "Movie deleted successfully",
		Data:    toAPIMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toAPIMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Genre:       movie.Genre,
		Ratings:     movie.Ratings,
		PosterImage: movie.PosterImage,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func toAPIMovies(movies []*domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))
	for i, movie := range movies {
		apiMovies[i] = toAPIMovie(movie)
	}

	return apiMovies
}
