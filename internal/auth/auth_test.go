package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var permissionNames = []string{"create_project", "create_team", "create_account", "admin"}

func staticSource(names []string) PermissionSource {
	return func(context.Context) ([]string, error) { return names, nil }
}

func TestPermissionCache_Codes(t *testing.T) {
	cache := NewPermissionCache(staticSource(permissionNames))

	codes, err := cache.Codes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"create_project": 1, "create_team": 2, "create_account": 4, "admin": 8}, codes)

	mask, err := cache.Mask(context.Background(), "create_team", "admin")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), mask)

	_, err = cache.Mask(context.Background(), "fly")
	assert.ErrorIs(t, err, ErrUnknownPermission)
}

func TestPermissionCache_LoadsOnceConcurrently(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := NewPermissionCache(func(context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return permissionNames, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Codes(context.Background())
			assert.NoError(t, err)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	_, err := cache.Codes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPermissionCache_FailureIsNotCached(t *testing.T) {
	fail := true
	cache := NewPermissionCache(func(context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("file missing")
		}
		return permissionNames, nil
	})

	_, err := cache.Codes(context.Background())
	require.Error(t, err)

	fail = false
	codes, err := cache.Codes(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, 4)
}

func TestPermissionCache_Invalidate(t *testing.T) {
	names := []string{"a"}
	cache := NewPermissionCache(func(context.Context) ([]string, error) { return names, nil })

	codes, _ := cache.Codes(context.Background())
	assert.Len(t, codes, 1)

	names = []string{"a", "b"}
	codes, _ = cache.Codes(context.Background())
	assert.Len(t, codes, 1)

	cache.Invalidate()
	codes, _ = cache.Codes(context.Background())
	assert.Len(t, codes, 2)
}

func TestPermissionCache_InvalidateDuringLoad(t *testing.T) {
	var (
		mu    sync.Mutex
		names = []string{"a"}
		calls atomic.Int32
	)
	entered := make(chan struct{}, 1)
	release := make(chan struct{})

	cache := NewPermissionCache(func(context.Context) ([]string, error) {
		n := calls.Add(1)
		mu.Lock()
		current := append([]string(nil), names...)
		mu.Unlock()
		if n == 1 {
			entered <- struct{}{}
			<-release
		}
		return current, nil
	})

	done := make(chan map[string]uint64, 1)
	go func() {
		codes, _ := cache.Codes(context.Background())
		done <- codes
	}()

	<-entered
	cache.Invalidate()
	mu.Lock()
	names = []string{"a", "b"}
	mu.Unlock()
	close(release)

	// the caller of the old load still gets an answer
	assert.Len(t, <-done, 1)

	codes, err := cache.Codes(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPermissionCache_LoadIgnoresCallerCancellation(t *testing.T) {
	cache := NewPermissionCache(func(ctx context.Context) ([]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return permissionNames, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	codes, err := cache.Codes(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 4)
}

func TestPermissionCache_Empty(t *testing.T) {
	cache := NewPermissionCache(staticSource(nil))
	_, err := cache.Codes(context.Background())
	assert.ErrorIs(t, err, ErrNoPermissions)
}

func TestFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permissions.json")
	require.NoError(t, os.WriteFile(path, []byte(`["create_project","create_team"]`), 0o600))

	names, err := FilePermissions(path)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"create_project", "create_team"}, names)

	_, err = FilePermissions(filepath.Join(t.TempDir(), "nope.json"))(context.Background())
	assert.Error(t, err)
}

func TestMissing(t *testing.T) {
	codes := map[string]uint64{"a": 1, "b": 2, "c": 4, "d": 8}

	assert.Empty(t, Missing(15, 11, codes))
	assert.Equal(t, []string{"b"}, Missing(9, 11, codes))
	// 11 = 8 + 2 + 1
	assert.Equal(t, []string{"a", "b", "d"}, Missing(0, 11, codes))
}

func TestToken_RoundTrip(t *testing.T) {
	now := time.Now()
	token, err := IssueToken(Principal{AccountID: 3, FirstName: "Ada", Permission: 5}, secret, time.Hour, now)
	require.NoError(t, err)

	p, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.AccountID)
	assert.Equal(t, uint64(5), p.Permission)
	assert.Equal(t, "Ada", p.FirstName)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := IssueToken(Principal{AccountID: 3}, secret, time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseToken(expired, secret)
	assert.Error(t, err)

	anonymous, err := IssueToken(Principal{}, secret, 0, now)
	require.NoError(t, err)
	_, err = ParseToken(anonymous, secret)
	assert.Error(t, err)
}

func newTestAuthenticator() *Authenticator {
	logger, _ := logtest.NewNullLogger()
	return NewAuthenticator(secret, NewPermissionCache(staticSource(permissionNames)), logger)
}

func protectedHandler(a *Authenticator, perms ...string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := PrincipalFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]int64{"account": p.AccountID})
	})
	return a.Authenticate(a.Require(perms...)(ok))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) authErrorBody {
	t.Helper()
	var body map[string]authErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestMiddleware(t *testing.T) {
	a := newTestAuthenticator()
	h := protectedHandler(a, "create_project", "create_team")
	now := time.Now()

	granted, _ := IssueToken(Principal{AccountID: 1, Permission: 3}, secret, time.Hour, now)
	partial, _ := IssueToken(Principal{AccountID: 2, Permission: 1}, secret, time.Hour, now)

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects", nil)
		req.Header.Set("Authorization", "Bearer "+granted)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"account":1}`, rec.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: granted})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
	})

	t.Run("bad scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing permission", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/projects", nil)
		req.Header.Set("Authorization", "Bearer "+partial)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "MISSING_PERMISSION", body.Code)
		assert.Equal(t, []string{"create_team"}, body.Missing)
	})
}

func TestMiddleware_UnknownRequiredPermission(t *testing.T) {
	a := newTestAuthenticator()
	h := protectedHandler(a, "teleport")
	token, _ := IssueToken(Principal{AccountID: 1, Permission: 15}, secret, time.Hour, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
