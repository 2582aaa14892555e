package main

import (
	"context"
	"errors"
	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/services/auth"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil && err != http.ErrAbortHandler {
				app.Http.ServerError(w, r, err.(error), "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) RateLimiter(next http.Handler) http.Handler {
	const op = "middlewares.RateLimiter"
	log := app.log.With("op", op)
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	clients := make(map[string]*client)
	var mu sync.Mutex
	go func() {
		for {
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 5*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
			time.Sleep(5 * time.Minute)
		}
	}()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.cfg.Limiter.Enabled {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				app.Http.ServerError(w, r, err, "")
				return
			}
			mu.Lock()
			if _, ok := clients[ip]; !ok {
				clients[ip] = &client{
					limiter:  rate.NewLimiter(rate.Limit(app.cfg.Limiter.Rps), app.cfg.Limiter.Burst),
					lastSeen: time.Now(),
				}
			}
			limiter := clients[ip].limiter
			clients[ip].lastSeen = time.Now()
			mu.Unlock()
			if !limiter.Allow() {
				log.Warn("rate limit exceeded", "ip", ip)
				app.Http.Errors(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type CtxKey string

const CtxKeyUser CtxKey = "user"

// Authenticate resolves the Bearer token to a user and stores it in the
// request context. Requests without a header pass through as anonymous.
func (app *Application) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := models.AnonymousUser

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			const bearerLength = len("Bearer ")
			if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) < bearerLength+1 {
				app.log.Warn("Invalid auth header", "header", authHeader)
				app.Http.BadRequest(w, r, "Invalid Authorization header, should be 'Bearer <token>'")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			authenticated, err := app.services.Auth.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInvalidToken):
					app.Http.Unauthorized(w, r, "Invalid or expired token")
				case errors.Is(err, auth.ErrUserNotFound):
					app.Http.Unauthorized(w, r, "Invalid or expired token")
				default:
					app.Http.ServerError(w, r, err, "")
				}
				return
			}
			user = authenticated
		}
		r = r.WithContext(context.WithValue(r.Context(), CtxKeyUser, user))
		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)
		if user.IsAnonymous() {
			app.Http.Unauthorized(w, r, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (app *Application) contextGetUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(CtxKeyUser).(*models.User)
	if !ok {
		return models.AnonymousUser
	}
	return user
}
