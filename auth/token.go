package auth

import (
	"fmt"
	"time"

	"talker/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "talker"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	AvatarURL string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and validates session tokens with a shared secret.
type Issuer struct {
	key      []byte
	duration time.Duration
}

func NewIssuer(secret string, duration time.Duration) Issuer {
	return Issuer{key: []byte(secret), duration: duration}
}

// GenerateToken creates a signed JWT for a specific user.
func (i Issuer) GenerateToken(userID, avatarURL string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID:    userID,
		AvatarURL: avatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// HS256 (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return signed, nil
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (i Issuer) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(token *jwt.Token) (any, error) { return i.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}
	return nil, errors.ErrInvalidToken
}

// ParseUnverified reads the claims of a token without checking its signature.
// Clients use it to learn who they are; only the server can verify.
func ParseUnverified(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}
