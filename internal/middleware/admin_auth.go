package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/handler/api"
)

const (
	TokenIssuer   = "core"
	TokenAudience = "showcase"
	AdminRole     = "admin"

	// iat may run this far ahead of our clock
	issuedAtLeeway = 30 * time.Second
)

var (
	errBadIssuer   = errors.New("bad issuer")
	errBadAudience = errors.New("bad audience")
	errExpired     = errors.New("token expired")
	errBadIssuedAt = errors.New("invalid iat")
	errMissingSub  = errors.New("missing sub")
)

// adminClaims is what core puts in tokens for this service.
type adminClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Valid replaces the default time checks so exp is mandatory and iat gets
// some leeway.
func (c *adminClaims) Valid() error {
	now := time.Now()
	switch {
	case !c.VerifyIssuer(TokenIssuer, true):
		return errBadIssuer
	case !c.VerifyAudience(TokenAudience, true):
		return errBadAudience
	case !c.VerifyExpiresAt(now, true):
		return errExpired
	case !c.VerifyIssuedAt(now.Add(issuedAtLeeway), false):
		return errBadIssuedAt
	case c.Subject == "":
		return errMissingSub
	}
	return nil
}

// WithAdminAuth validates an RS256 Bearer JWT issued by core and requires the
// admin role. Without a public key every request is refused.
func WithAdminAuth(jwtPublicKeyPEM string) func(http.Handler) http.Handler {
	if jwtPublicKeyPEM == "" {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				api.WriteError(w, http.StatusUnauthorized, "admin authentication is not configured", nil)
			})
		}
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(jwtPublicKeyPEM))
	if err != nil {
		panic(fmt.Sprintf("invalid Core RSA public key: %v", err))
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}))
	keyFunc := func(*jwt.Token) (interface{}, error) { return pubKey, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			claims := &adminClaims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				api.WriteError(w, http.StatusUnauthorized, unauthorizedReason(err), err)
				return
			}

			ctx := api_context.WithAuth(r.Context(), claims.Subject, claims.Roles)
			if !api_context.HasRole(ctx, AdminRole) {
				api.WriteError(w, http.StatusForbidden, "admin role required", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorizedReason exposes claim failures and hides signature details.
func unauthorizedReason(err error) string {
	for _, known := range []error{errBadIssuer, errBadAudience, errExpired, errBadIssuedAt, errMissingSub} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "unauthorized"
}
