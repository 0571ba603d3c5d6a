package config_test

import (
	"foodgram/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 6, cfg.Pagination.PageSize)
	require.Equal(t, 100, cfg.Pagination.MaxPageSize)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("PAGINATION_PAGE_SIZE", "12")

	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9090"
  rateLimitRequests: 50
  rateLimitWindow: 30s
shoppingList:
  pdfFontPath: /fonts/DejaVuSans.ttf
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 50, cfg.HTTP.RateLimitRequests)
	require.Equal(t, 30*time.Second, cfg.HTTP.RateLimitWindow)
	require.Equal(t, "/fonts/DejaVuSans.ttf", cfg.ShoppingList.PDFFontPath)
	require.Equal(t, 12, cfg.Pagination.PageSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
