package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movievault/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRequireAuthenticatedUser(t *testing.T) {
	app, _ := NewTestApplication(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	t.Run("authenticated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(context.WithValue(request.Context(), CtxKeyUser, &models.User{
			ID:    1,
			Email: "test@gmail.com",
		}))
		app.requireAuthenticatedUser(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(context.WithValue(request.Context(), CtxKeyUser, models.AnonymousUser))
		app.requireAuthenticatedUser(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	app, backend := NewTestApplication(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("test12345"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := backend.users.Insert(context.Background(), "test@gmail.com", hash)
	require.NoError(t, err)
	token, err := app.services.Auth.Login(context.Background(), "test@gmail.com", "test12345")
	require.NoError(t, err)

	t.Run("valid token resolves user", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, user.ID, app.contextGetUser(r).ID)
			w.WriteHeader(http.StatusOK)
		})
		app.Authenticate(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("invalid token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer not-a-token")
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler should not be reached")
		})
		app.Authenticate(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
	t.Run("no header passes through as anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, app.contextGetUser(r).IsAnonymous())
			w.WriteHeader(http.StatusOK)
		})
		app.Authenticate(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("malformed header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Token abc")
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler should not be reached")
		})
		app.Authenticate(next).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
