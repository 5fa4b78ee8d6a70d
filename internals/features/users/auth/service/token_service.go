// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

// TokenClaims is the wire form of the access token payload.
type TokenClaims struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Issue signs claims with HS256. An exp claim is added only when ttl > 0.
func (t *TokenIssuer) Issue(c helperAuth.Claims) (string, error) {
	now := t.now()
	claims := TokenClaims{
		UserID:   c.UserID.String(),
		FullName: c.FullName,
		UserType: string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies the signature and decodes the claims. Only HS256 is accepted,
// which also rules out alg=none.
func (t *TokenIssuer) Parse(raw string) (helperAuth.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return helperAuth.Claims{}, helper.AuthError("Token is missing")
	}

	var claims TokenClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return helperAuth.Claims{}, helper.AuthError("Token has expired")
		}
		return helperAuth.Claims{}, helper.AuthError("Invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return helperAuth.Claims{}, helper.AuthError("Invalid token")
	}
	role, ok := constants.ParseRole(claims.UserType)
	if !ok {
		return helperAuth.Claims{}, helper.AuthError("Invalid token")
	}

	return helperAuth.Claims{
		UserID:   userID,
		FullName: claims.FullName,
		Role:     role,
	}, nil
}
