package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddr = "127.0.0.1:0"
	c.DatabaseDriver = config.DriverSQLite
	c.DatabaseDSN = "file::memory:?_foreign_keys=on"
	c.BcryptCost = 4
	c.AdminEmail = "admin@gmail.com"
	c.AdminPassword = "admin"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewAppSeedsAdminAndRuns(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(), &out)
	require.NoError(t, err)

	u, err := app.db.Gorm.WithContext(context.Background()).Raw("SELECT role FROM users WHERE email = ?", "admin@gmail.com").Rows()
	require.NoError(t, err)
	require.True(t, u.Next())
	var role string
	require.NoError(t, u.Scan(&role))
	require.NoError(t, u.Close())
	assert.Equal(t, "ADMIN", role)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Contains(t, out.String(), "admin account created")
	assert.Contains(t, out.String(), "App stopped")
}

func TestServiceLogsCarryModuleOnce(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	req := httptest.NewRequest(http.MethodPost, "/signin",
		strings.NewReader(`{"email":"admin@gmail.com","password":"wrong-one"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var line string
	for _, l := range strings.Split(out.String(), "\n") {
		if strings.Contains(l, "signin rejected") {
			line = l
		}
	}
	require.NotEmpty(t, line, out.String())
	assert.Equal(t, 1, strings.Count(line, `"module"`), line)
	assert.Contains(t, line, `"module":"auth"`)
}

func TestNewAppUnknownDriver(t *testing.T) {
	c := testConfig()
	c.DatabaseDriver = "oracle"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.Error(t, err)
}
