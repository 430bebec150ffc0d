package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func completeEnv(t *testing.T) {
	t.Setenv("GRADELINE_DATABASE_URL", "postgres://localhost/gradeline")
	t.Setenv("GRADELINE_PUBLIC_URL", "https://grade.example.org/")
	t.Setenv("GRADELINE_GITEA_URL", "https://git.example.org")
	t.Setenv("GRADELINE_GITEA_TOKEN", "gt")
	t.Setenv("GRADELINE_GITEA_OWNER", "school")
	t.Setenv("GRADELINE_WOODPECKER_URL", "https://ci.example.org")
	t.Setenv("GRADELINE_WOODPECKER_TOKEN", "wt")
	t.Setenv("GRADELINE_AUTH_JWT_SECRET", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "woodpecker", cfg.CI.HookMatch)
	assert.Equal(t, 15*time.Second, cfg.CI.ClientTimeout)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.EqualError(t, cfg.ValidateDatabase(), "config database.url is required (env GRADELINE_DATABASE_URL)")
}

func TestLoad_Environment(t *testing.T) {
	completeEnv(t)
	t.Setenv("GRADELINE_HTTP_ADDR", ":9000")
	t.Setenv("GRADELINE_CI_CLIENT_TIMEOUT", "3s")

	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.CI.ClientTimeout)
	assert.Equal(t, "school", cfg.Gitea.Owner)

	assert.Equal(t, "https://grade.example.org/api/v1/endpoint/git-event", cfg.PushWebhookURL())
	assert.Equal(t, "https://grade.example.org/api/v1/endpoint/ci-result", cfg.TeamCallbackURL())
	assert.Equal(t, "https://grade.example.org/api/v1/endpoint/ci-result/owner", cfg.OwnerCallbackURL())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	file := writeFile(t, "gradeline.yaml", `
http:
  addr: ":7000"
  read_timeout: 2s
gitea:
  owner: from-file
log:
  level: debug
  format: text
`)
	t.Setenv("GRADELINE_GITEA_OWNER", "from-env")

	cfg, err := Load(viper.New(), file, "")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "from-env", cfg.Gitea.Owner)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	env := writeFile(t, ".env", "GRADELINE_WOODPECKER_TOKEN=from-dotenv\n")
	t.Setenv("GRADELINE_WOODPECKER_TOKEN", "")
	os.Unsetenv("GRADELINE_WOODPECKER_TOKEN")

	cfg, err := Load(viper.New(), "", env)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Woodpecker.Token)

	_, err = Load(viper.New(), "", filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	completeEnv(t)
	t.Setenv("GRADELINE_GITEA_TOKEN", "")

	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)
	assert.EqualError(t, cfg.Validate(), "config gitea.token is required (env GRADELINE_GITEA_TOKEN)")

	cfg.Gitea.Token = "gt"
	cfg.Log.Level = "loud"
	assert.ErrorContains(t, cfg.Validate(), "log.level")
}

func TestValidate_EmptyHookMatch(t *testing.T) {
	completeEnv(t)
	file := writeFile(t, "gradeline.yaml", "ci:\n  hook_match: \"\"\n")

	cfg, err := Load(viper.New(), file, "")
	require.NoError(t, err)

	assert.Empty(t, cfg.CI.HookMatch)
	assert.EqualError(t, cfg.Validate(), "config ci.hook_match is required (env GRADELINE_CI_HOOK_MATCH)")
}

func TestNewLogger(t *testing.T) {
	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = LogConfig{Level: "info", Format: "xml"}.NewLogger()
	assert.Error(t, err)
}
