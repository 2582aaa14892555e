package models

import "movievault/proj/internal/storage/postgres"

type Models struct {
	Movies *MovieModel
	Users  *UserModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Movies: &MovieModel{db.Conn},
		Users:  &UserModel{db.Conn},
	}
}
