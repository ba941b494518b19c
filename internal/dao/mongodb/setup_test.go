package mongodb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tcMongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func configureDockerDesktop(t *testing.T) {
	t.Helper()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	socket := filepath.Join(home, ".docker", "run", "docker.sock")
	if info, err := os.Stat(socket); err == nil && !info.IsDir() {
		t.Setenv("DOCKER_HOST", "unix://"+socket)
		t.Setenv("TESTCONTAINERS_DOCKER_SOCKET_OVERRIDE", socket)
	}
}

// setupTestDatabase spins up a throwaway Mongo container and hands back a
// database scoped to the calling test.
func setupTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	configureDockerDesktop(t)

	baseCtx := context.Background()
	containerCtx, cancel := context.WithTimeout(baseCtx, 5*time.Minute)
	t.Cleanup(cancel)

	mongoContainer, err := tcMongo.Run(containerCtx, "mongo:7.0.14")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mongoContainer.Terminate(context.Background()))
	})

	connString, err := mongoContainer.ConnectionString(containerCtx)
	require.NoError(t, err)

	client, err := mongo.Connect(containerCtx, options.Client().ApplyURI(connString))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, client.Disconnect(context.Background()))
	})

	dbName := fmt.Sprintf("pos_test_%d", time.Now().UnixNano())
	db := client.Database(dbName)
	t.Cleanup(func() {
		err := db.Drop(context.Background())
		var cmdErr mongo.CommandError
		if err != nil && (!errors.As(err, &cmdErr) || cmdErr.Code != 26) {
			require.NoError(t, err)
		}
	})

	return db
}
