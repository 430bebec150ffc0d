package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const cookieName = "jwt"

type Authenticator struct {
	secret string
	perms  *PermissionCache
	log    logrus.FieldLogger
}

func NewAuthenticator(secret string, perms *PermissionCache, log logrus.FieldLogger) *Authenticator {
	return &Authenticator{secret: secret, perms: perms, log: log}
}

// Authenticate reads the token from the Authorization header or the jwt cookie.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if authz := strings.TrimSpace(r.Header.Get("Authorization")); authz != "" {
			t, ok := bearerToken(authz)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials", nil)
				return
			}
			token = t
		} else if c, err := r.Cookie(cookieName); err == nil {
			token = c.Value
		}

		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
			return
		}

		principal, err := ParseToken(token, a.secret)
		if err != nil {
			a.log.WithError(err).Debug("rejected token")
			writeAuthError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// Require rejects callers missing any of the named permissions and lists the
// missing ones.
func (a *Authenticator) Require(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
				return
			}

			required, err := a.perms.Mask(r.Context(), names...)
			if err != nil {
				a.log.WithError(err).Error("permission table unavailable")
				writeAuthError(w, http.StatusInternalServerError, "INTERNAL", "permissions unavailable", nil)
				return
			}

			if principal.Permission&required != required {
				codes, _ := a.perms.Codes(r.Context())
				missing := Missing(principal.Permission, required, codes)
				a.log.WithFields(logrus.Fields{"account": principal.AccountID, "missing": missing}).Info("permission denied")
				writeAuthError(w, http.StatusForbidden, "MISSING_PERMISSION", "missing permission", missing)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type authErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

func writeAuthError(w http.ResponseWriter, status int, code, message string, missing []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]authErrorBody{
		"error": {Code: code, Message: message, Missing: missing},
	})
}
