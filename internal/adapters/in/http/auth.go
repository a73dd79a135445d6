package http

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"quickbite/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RolePartner    Role = "partner"
)

func (r Role) valid() bool {
	return r == RoleCustomer || r == RoleRestaurant || r == RolePartner
}

// AuthenticatedPrincipal is the caller as established by the bearer token.
// For RoleRestaurant the ID is the owning user, not the restaurant.
type AuthenticatedPrincipal struct {
	ID   kernel.UUID
	Role Role
}

// Claims are the token claims; the subject carries the user id.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

const principalKey = "principal"

var (
	errMissingToken = errors.New("authorization header missing")
	errBadScheme    = errors.New("invalid authorization format")
)

// Authenticator verifies HS256 bearer tokens signed with a shared secret.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Middleware stores the AuthenticatedPrincipal on the echo context or
// answers 401.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := a.authenticate(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "unauthorized: " + err.Error(),
				})
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func (a *Authenticator) authenticate(r *http.Request) (AuthenticatedPrincipal, error) {
	tokenStr, err := extractBearerToken(r)
	if err != nil {
		return AuthenticatedPrincipal{}, err
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return AuthenticatedPrincipal{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return AuthenticatedPrincipal{}, err
	}
	if !claims.Role.valid() {
		return AuthenticatedPrincipal{}, errors.New("unknown role " + string(claims.Role))
	}
	return AuthenticatedPrincipal{ID: id, Role: claims.Role}, nil
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", errBadScheme
	}
	return token, nil
}

// RequireRole answers 403 unless the principal has one of roles.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
			}
			if !slices.Contains(roles, principal.Role) {
				return c.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "forbidden: insufficient role",
				})
			}
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (AuthenticatedPrincipal, bool) {
	p, ok := c.Get(principalKey).(AuthenticatedPrincipal)
	return p, ok
}
