package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// principalContextKey is the echo context key the auth middleware stores the
// authenticated principal under.
const principalContextKey = "principal"

// Claims represents the JWT claims of an access token issued by the identity
// provider.
type Claims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTService validates the identity provider's access tokens. Token issuing
// lives with the identity provider; GenerateAccessToken exists for local
// development and tests.
type JWTService struct {
	signingKey []byte
	issuer     string
}

// NewJWTService creates a token service for the given HMAC signing key.
func NewJWTService(signingKey string, issuer string) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// GenerateAccessToken signs a token carrying the account id and its roles.
func (s *JWTService) GenerateAccessToken(
	userID uuid.UUID,
	roles []string,
	expiresIn time.Duration,
) (string, error) {
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})

	return newToken.SignedString(s.signingKey)
}

// ValidateToken parses and verifies a token string and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		return nil, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// Authenticate is an echo middleware that resolves the Bearer token into an
// account principal and stores it on the request context.
func (s *JWTService) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		claims, err := s.ValidateToken(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}

		userID, err := kernel.UUIDFromString(claims.UserID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token subject",
			})
		}

		roles := make([]account.Role, 0, len(claims.Roles))
		for _, role := range claims.Roles {
			roles = append(roles, account.Role(role))
		}

		principal, err := account.NewPrincipal(userID, roles...)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token subject",
			})
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

// RequireRole is an echo middleware factory gating a route to principals
// holding the given role. Authorization beyond the role gate (ownership,
// assignment) is the access policy's job.
func RequireRole(role account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := principalFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}
			if !principal.HasRole(role) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Insufficient role",
				})
			}
			return next(ctx)
		}
	}
}

// principalFrom retrieves the authenticated principal the Authenticate
// middleware stored on the context.
func principalFrom(ctx echo.Context) (account.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(account.Principal)
	return principal, ok
}
