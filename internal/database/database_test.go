package database

import (
	"context"
	"errors"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/trentd187/players-api/internal/config"
	"github.com/trentd187/players-api/internal/models"
)

func TestScheme(t *testing.T) {
	tests := map[string]struct {
		uri  string
		want string
	}{
		"mongodb":          {uri: "mongodb://localhost:27017", want: "mongodb"},
		"mongodb srv":      {uri: "mongodb+srv://user:pw@cluster0.example.net/?retryWrites=true", want: "mongodb+srv"},
		"multi host mongo": {uri: "mongodb://a:27017,b:27017/?replicaSet=rs0", want: "mongodb"},
		"postgres":         {uri: "postgres://u:p@localhost:5432/players", want: "postgres"},
		"upper case":       {uri: "PostgreSQL://localhost/players", want: "postgresql"},
		"memory":           {uri: "memory://", want: "memory"},
		"padded":           {uri: "  memory://  ", want: "memory"},
		"no scheme":        {uri: "localhost:5432", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Scheme(tc.uri); got != tc.want {
				t.Errorf("scheme incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestConnect_missingURI(t *testing.T) {
	store, err := Connect(context.Background(), &config.Config{}, zerolog.Nop())
	if !errors.Is(err, ErrMissingURI) {
		t.Errorf("expected ErrMissingURI, got: %v", err)
	}
	if store != nil {
		t.Errorf("expected no store, got: %v", store)
	}
}

func TestConnect_unsupportedScheme(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "mysql://localhost/players"}

	store, err := Connect(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got: %v", err)
	}
	if store != nil {
		t.Errorf("expected no store, got: %v", store)
	}
}

func TestConnect_memory(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "memory://"}

	store, err := Connect(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("expected a *MemoryStore, got: %T", store)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore(), "00000000-0000-0000-0000-000000000000")
}

// A request path parameter is only valid for the duration of the request, so the
// store must not keep the caller's string after Update returns.
func TestMemoryStore_updateCopiesID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := testPlayer()
	id, err := s.Create(ctx, &p)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	buf := []byte(id)
	view := unsafe.String(&buf[0], len(buf))
	p.Team = "Y"
	if err := s.Update(ctx, view, &p); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// The request buffer gets reused for the next request.
	for i := range buf {
		buf[i] = 'f'
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("stored id changed with the caller's buffer, wanted: %s, got: %s", id, got.ID)
	}
	if got.Team != "Y" {
		t.Errorf("team incorrect, wanted: Y, got: %s", got.Team)
	}
}

func TestMemoryStore_validID(t *testing.T) {
	s := NewMemoryStore()
	if !s.ValidID("5f0c6a1e-2b1c-4b8e-9a51-3f1d2c9d7e10") {
		t.Errorf("uuid should be valid")
	}
	if s.ValidID("not-a-valid-id") {
		t.Errorf("garbage should be invalid")
	}
}

func testPlayer() models.Player {
	return models.Player{
		FirstName: "Ana",
		LastName:  "Diaz",
		Sport:     "tennis",
		Team:      "X",
		Age:       21,
		Rating:    88.5,
		IsActive:  true,
	}
}

// runStoreTests exercises the Store contract against s. missingID must be a
// well-formed id for s that addresses no record.
func runStoreTests(t *testing.T, s Store, missingID string) {
	t.Helper()
	ctx := context.Background()

	if !s.ValidID(missingID) {
		t.Fatalf("missing id %q should be well formed", missingID)
	}

	players, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if players == nil || len(players) != 0 {
		t.Fatalf("expected an empty, non-nil list, got: %v", players)
	}

	// Round trip.
	in := testPlayer()
	id, err := s.Create(ctx, &in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !s.ValidID(id) {
		t.Errorf("assigned id %q is not valid for the store", id)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := in
	want.ID = id
	if *got != want {
		t.Errorf("player incorrect, wanted: %+v, got: %+v", want, *got)
	}

	// Full replace, including false/zero-ish values.
	replacement := models.Player{
		FirstName: "Bea",
		LastName:  "Ruiz",
		Sport:     "padel",
		Team:      "Y",
		Age:       30,
		Rating:    0,
		IsActive:  false,
	}
	if err := s.Update(ctx, id, &replacement); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err = s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update failed: %v", err)
	}
	replacement.ID = id
	if *got != replacement {
		t.Errorf("updated player incorrect, wanted: %+v, got: %+v", replacement, *got)
	}

	// Updating with identical values still counts as a match.
	if err := s.Update(ctx, id, &replacement); err != nil {
		t.Errorf("no-op update should succeed, got: %v", err)
	}

	players, err = s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(players) != 1 || players[0].ID != id {
		t.Errorf("unexpected list: %+v", players)
	}

	// Not found paths.
	if _, err := s.Get(ctx, missingID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: expected ErrNotFound, got: %v", err)
	}
	if err := s.Update(ctx, missingID, &replacement); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got: %v", err)
	}
	if err := s.Delete(ctx, missingID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: expected ErrNotFound, got: %v", err)
	}

	// Delete, then delete again.
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got: %v", err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("get deleted: expected ErrNotFound, got: %v", err)
	}
}
