package integration_test

import (
	"os"
	"sync"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, building it on first
// use. Tests calling it skip automatically when TEST_DATABASE_URL is
// not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
