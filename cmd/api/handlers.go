package main

import (
	"errors"
	"fmt"
	"net/http"

	"movievault/proj/internal/domain/models"
	libvalidator "movievault/proj/internal/lib/validator"
	"movievault/proj/internal/services/auth"
	"movievault/proj/internal/services/movies"
	"movievault/proj/internal/storage"
)

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	app.Http.JSON(w, r, http.StatusOK, struct {
		Status  string `json:"status"`
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
	}{
		Status:  "available",
		Debug:   app.cfg.Debug,
		Version: version,
	})
}

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	query := struct {
		Limit int `schema:"limit"`
	}{Limit: storage.EmptyIntValue}
	if err := app.decodeQuery(&query, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, "invalid query parameters")
		return
	}
	movieList, err := app.services.Movies.List(r.Context(), user, query.Limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if movieList == nil {
		movieList = []models.Movie{}
	}
	app.Http.JSON(w, r, http.StatusOK, movieList)
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	id, extracted := app.extractIDParam(w, r)
	if !extracted {
		return
	}
	movie, err := app.services.Movies.Get(r.Context(), id, user)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, fmt.Sprintf("Movie with id #%d not found", id))
		case errors.Is(err, movies.ErrMovieForbidden):
			app.Http.Forbidden(w, r, "Movie belongs to another user")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.JSON(w, r, http.StatusOK, movie)
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	var req map[string]any
	if err := app.readJSON(w, r, &req); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	movie, err := app.services.Movies.Create(r.Context(), user, req)
	if err != nil {
		var validationErr *libvalidator.ValidationError
		if errors.As(err, &validationErr) {
			app.Http.ValidationFailed(w, r, validationErr.Fields)
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.JSON(w, r, http.StatusCreated, movie)
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := libvalidator.ValidateStruct(app.validator, input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	token, err := app.services.Auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.Unauthorized(w, r, "Invalid email or password")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.JSON(w, r, http.StatusOK, map[string]string{"auth_token": token})
}
