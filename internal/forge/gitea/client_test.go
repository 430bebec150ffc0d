package gitea

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gradeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL, "tok", "classroom", 5*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestGenerateFromTemplate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/repos/classroom/tp/generate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token tok", r.Header.Get("Authorization"))

		var body generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "classroom", body.Owner)
		assert.Equal(t, "tp-alice-bob", body.Name)
		assert.True(t, body.Private)
		assert.True(t, body.GitContent)

		writeJSON(w, http.StatusCreated, map[string]any{
			"id": 12, "name": "tp-alice-bob", "full_name": "classroom/tp-alice-bob",
			"clone_url": "https://git.example/classroom/tp-alice-bob.git",
		})
	})
	c := newTestClient(t, mux)

	repo, err := c.GenerateFromTemplate(context.Background(), "tp", "tp-alice-bob")
	require.NoError(t, err)
	assert.Equal(t, int64(12), repo.ID)
	assert.Equal(t, "classroom/tp-alice-bob", repo.FullName)
}

func TestGenerateFromTemplate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    domain.ExternalKind
		subject string
	}{
		{name: "exists", status: 409, body: `{"message":"repository already exists"}`, kind: domain.ExternalAlreadyExists, subject: "tp-carol"},
		{name: "missing template", status: 404, body: `{"message":"not found"}`, kind: domain.ExternalNotFound, subject: "tp"},
		{name: "not a template", status: 422, body: `{"message":"tp is not a template"}`, kind: domain.ExternalNotATemplate, subject: "tp-carol"},
		{name: "empty", status: 422, body: `{"message":"repository is empty"}`, kind: domain.ExternalEmpty, subject: "tp-carol"},
		{name: "generic", status: 500, body: `{"message":"boom"}`, kind: domain.ExternalGeneric, subject: "tp-carol"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /api/v1/repos/classroom/tp/generate", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			c := newTestClient(t, mux)

			_, err := c.GenerateFromTemplate(context.Background(), "tp", "tp-carol")

			var ext *domain.ExternalError
			require.ErrorAs(t, err, &ext)
			assert.Equal(t, tc.kind, ext.Kind)
			assert.Equal(t, tc.status, ext.Status)
			assert.Equal(t, tc.subject, ext.Subject)
			assert.Equal(t, tc.body, ext.Body)
		})
	}
}

func TestAddWebhookAndProtectBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/repos/classroom/tp-bob/hooks", func(w http.ResponseWriter, r *http.Request) {
		var body createHookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gitea", body.Type)
		assert.Equal(t, []string{"push"}, body.Events)
		assert.Equal(t, hookConfig{URL: "https://grade.example/hook", ContentType: "json", Secret: "s3cr3t"}, body.Config)
		assert.True(t, body.Active)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /api/v1/repos/classroom/tp-bob/branch_protections", func(w http.ResponseWriter, r *http.Request) {
		var body branchProtectionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "main", body.BranchName)
		assert.Equal(t, "tests/*;.woodpecker.yml", body.ProtectedFilePatterns)
		w.WriteHeader(http.StatusCreated)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	require.NoError(t, c.AddWebhook(ctx, "tp-bob", domain.Webhook{URL: "https://grade.example/hook", Secret: "s3cr3t"}))
	require.NoError(t, c.ProtectBranch(ctx, "tp-bob", domain.BranchProtection{Branch: "main", Files: []string{"tests/*", ".woodpecker.yml"}}))
}

func TestRemoveWebhooks(t *testing.T) {
	deleted := make([]string, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/repos/alice/tp-bob/hooks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "config": map[string]string{"url": "https://ci.example/woodpecker/hook"}},
			{"id": 2, "config": map[string]string{"url": "https://grade.example/api/v1/endpoint/git-event"}},
			{"id": 3, "config": map[string]string{"url": "https://ci.example/woodpecker/hook?x=1"}},
		})
	})
	mux.HandleFunc("DELETE /api/v1/repos/alice/tp-bob/hooks/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = append(deleted, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux)

	n, err := c.RemoveWebhooks(context.Background(), "alice/tp-bob", "woodpecker", "https://grade.example/api/v1/endpoint/git-event")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"1", "3"}, deleted)
}

func TestRemoveWebhooks_KeepsPushHook(t *testing.T) {
	deleted := make([]string, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/repos/alice/tp-bob/hooks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "config": map[string]string{"url": "https://ci.example/hook"}},
			{"id": 2, "config": map[string]string{"url": "https://ci.example/api/v1/endpoint/git-event"}},
		})
	})
	mux.HandleFunc("DELETE /api/v1/repos/alice/tp-bob/hooks/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = append(deleted, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux)

	// the match also appears in the push webhook URL
	n, err := c.RemoveWebhooks(context.Background(), "alice/tp-bob", "ci.example", "https://ci.example/api/v1/endpoint/git-event")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"1"}, deleted)
}

func TestRemoveWebhooks_EmptyMatch(t *testing.T) {
	called := false

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux)

	n, err := c.RemoveWebhooks(context.Background(), "alice/tp-bob", "", "https://grade.example/api/v1/endpoint/git-event")

	assert.ErrorIs(t, err, ErrEmptyHookMatch)
	assert.Zero(t, n)
	assert.False(t, called)
}

func TestAddCollaborator_UnknownUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/repos/classroom/tp-bob/collaborators/ghost", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "user does not exist"})
	})
	c := newTestClient(t, mux)

	err := c.AddCollaborator(context.Background(), "tp-bob", "ghost")

	assert.True(t, domain.IsExternalKind(err, domain.ExternalUserNotFound))
	assert.Equal(t, "gitea: user ghost not found", err.Error())
}

func TestUserExists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/alice", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"login": "alice"})
	})
	mux.HandleFunc("GET /api/v1/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /api/v1/users/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	ok, err := c.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.UserExists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.UserExists(ctx, "broken")
	assert.Error(t, err)
}
