// Package database owns the one store handle the API talks to.
//
// Connect reads the connection string, picks a backend from its scheme, opens the
// connection and hands back a Store. There is no package-level handle: main connects
// once at startup and passes the Store to the handlers, so a Store value always means
// "connected". Handlers never see an unconnected database.
//
// Backends:
//   - mongodb:// and mongodb+srv://  → MongoDB document store (mongo.go)
//   - postgres:// and postgresql://  → PostgreSQL through GORM (postgres.go)
//   - memory://                      → in-process map, for local runs and tests (memory.go)
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trentd187/players-api/internal/config"
	"github.com/trentd187/players-api/internal/models"
)

// PlayersCollection is the table/collection name every backend stores players in.
const PlayersCollection = "players"

var (
	// ErrNotFound is returned when an id addresses no record.
	ErrNotFound = errors.New("player not found")
	// ErrMissingURI is returned by Connect when no connection string is configured.
	ErrMissingURI = errors.New("database connection string is not defined (set MONGODB_URI or DATABASE_URL)")
	// ErrUnsupportedScheme is returned by Connect for connection strings no backend handles.
	ErrUnsupportedScheme = errors.New("unsupported database scheme")
)

// Store is the set of operations the handlers need. Every backend implements it.
type Store interface {
	// ValidID reports whether id is structurally a valid identifier for this backend.
	// It does no I/O and says nothing about whether a record exists.
	ValidID(id string) bool

	List(ctx context.Context) ([]models.Player, error)
	// Get returns ErrNotFound when no record has the id.
	Get(ctx context.Context, id string) (*models.Player, error)
	// Create inserts p and returns the id the store assigned. p.ID is ignored.
	Create(ctx context.Context, p *models.Player) (string, error)
	// Update overwrites every field of the record with the given id.
	// It returns ErrNotFound when no record matched.
	Update(ctx context.Context, id string, p *models.Player) error
	// Delete returns ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error

	Close(ctx context.Context) error
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// Connect opens the store described by cfg. It fails without doing any I/O when the
// connection string is missing or its scheme is unknown; otherwise connection errors
// from the driver are returned wrapped.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Store, error) {
	uri := cfg.ConnectionString()
	if uri == "" {
		return nil, ErrMissingURI
	}

	// Each branch returns through an explicit nil check so a failed connect never
	// yields a non-nil Store wrapping a nil pointer.
	switch scheme := Scheme(uri); scheme {
	case "mongodb", "mongodb+srv":
		store, err := ConnectMongo(ctx, uri, cfg.DBName, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "postgres", "postgresql":
		store, err := ConnectPostgres(ctx, uri, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "memory":
		log.Info().Msg("Using in-memory player store; data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Scheme returns the lower-cased part of uri before "://", or "" when there is none.
// url.Parse is avoided on purpose: mongodb+srv and multi-host MongoDB URIs are not
// always valid URLs.
func Scheme(uri string) string {
	scheme, _, found := strings.Cut(strings.TrimSpace(uri), "://")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}
