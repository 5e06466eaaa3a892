package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trentd187/players-api/internal/models"
)

type DB struct {
	mock.Mock
}

func (db *DB) ValidID(id string) bool {
	args := db.Called(id)
	return args.Bool(0)
}

func (db *DB) List(ctx context.Context) ([]models.Player, error) {
	args := db.Called(ctx)

	var r []models.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Player)
	}
	return r, args.Error(1)
}

func (db *DB) Get(ctx context.Context, id string) (*models.Player, error) {
	args := db.Called(ctx, id)

	var p *models.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*models.Player)
	}

	return p, args.Error(1)
}

func (db *DB) Create(ctx context.Context, p *models.Player) (string, error) {
	args := db.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (db *DB) Update(ctx context.Context, id string, p *models.Player) error {
	args := db.Called(ctx, id, p)
	return args.Error(0)
}

func (db *DB) Delete(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) Close(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}
