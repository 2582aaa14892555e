package main

import (
	"log/slog"
	"movievault/proj/internal/api/tasks"
	"movievault/proj/internal/config"
	"movievault/proj/internal/services"
	"movievault/proj/internal/storage/postgres"
	dbmodels "movievault/proj/internal/storage/postgres/models"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
	bgTasks   *tasks.BackgroundTasks
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage *postgres.Storage, bgTasks *tasks.BackgroundTasks) *Application {
	db := dbmodels.New(storage)
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
		services:  services.New(log, cfg, db, bgTasks),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
		bgTasks: bgTasks,
	}
	return app
}
