package main

import (
	"os"
	"path/filepath"
	"testing"

	"gradeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
template: tp-go
protection:
  branch: main
  files: [".woodpecker.yml", "tests/*"]
teams:
  - [alice, bob]
  - [carol]
`), 0o600))

	r, err := loadRoster(path)
	require.NoError(t, err)

	req := r.request()
	assert.Equal(t, "tp-go", req.Template)
	assert.Equal(t, [][]string{{"alice", "bob"}, {"carol"}}, req.Teams)
	assert.Equal(t, domain.BranchProtection{Branch: "main", Files: []string{".woodpecker.yml", "tests/*"}}, req.Protection)
	assert.NoError(t, req.Validate())
}

func TestLoadRoster_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams: [alice"), 0o600))

	_, err := loadRoster(path)
	assert.ErrorContains(t, err, "parse")

	_, err = loadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
