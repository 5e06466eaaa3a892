package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const mongoImage = "mongo:7.0"

// startMongo runs a throwaway MongoDB container and returns its connection string.
// The test is skipped in -short mode or when no container runtime is available.
func startMongo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.Run(ctx, mongoImage,
		testcontainers.WithExposedPorts("27017/tcp"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("27017/tcp").WithStartupTimeout(30*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("mongo container unavailable: %v", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "27017/tcp", "")
	if err != nil {
		t.Fatalf("error getting endpoint: %v", err)
	}
	return "mongodb://" + endpoint
}

func TestMongoStore(t *testing.T) {
	uri := startMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := ConnectMongo(ctx, uri, "players_api_test", zerolog.Nop())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer store.Close(context.Background())

	if store.ValidID("not-a-valid-id") {
		t.Errorf("garbage should be an invalid id")
	}
	if store.ValidID("5f0c6a1e-2b1c-4b8e-9a51-3f1d2c9d7e10") {
		t.Errorf("a uuid is not an ObjectID")
	}

	runStoreTests(t, store, "65a1f0c2e4b0a1b2c3d4e5f6")
}
