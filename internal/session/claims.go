package session

import (
	"fmt"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimUsername       = "username"
	claimRole           = "role"

	defaultUsername = "User"
)

// ParseClaims reads the claims of a backend token without verifying its
// signature. The backend verifies every token it receives; the front-end only
// needs the claims to render the navigation and gate pages.
func ParseClaims(token string) (domain.Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return domain.Claims{}, serrors.Wrap(serrors.ErrUnauthorized, err, "unreadable token")
	}

	claims := domain.Claims{
		UserID:   domain.UserID(stringClaim(mc, claimNameIdentifier, "sub")),
		Username: stringClaim(mc, claimUsername, "unique_name"),
		Role:     parseRole(mc[claimRole]),
	}
	if claims.Username == "" {
		claims.Username = defaultUsername
	}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return domain.Claims{}, serrors.Wrap(serrors.ErrUnauthorized, err, "malformed exp claim")
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// stringClaim returns the first non-empty claim among keys.
func stringClaim(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return ""
}

// parseRole accepts the role as a number or a numeric string. Anything else
// is a reader.
func parseRole(v any) domain.Role {
	switch r := v.(type) {
	case float64:
		return domain.Role(int(r))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return domain.RoleReader
		}

		return domain.Role(n)
	default:
		return domain.RoleReader
	}
}

// FormatRole renders a role for display.
func FormatRole(r domain.Role) string {
	switch r {
	case domain.RoleReader, domain.RoleJournalist, domain.RoleAdmin:
		s := r.String()

		return strings.ToUpper(s[:1]) + s[1:]
	default:
		return fmt.Sprintf("Role %d", int(r))
	}
}
