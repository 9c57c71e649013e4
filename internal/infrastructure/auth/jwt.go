package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set carried by an access token. Subject holds
// the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and verifies symmetric-key access tokens. There is no
// revocation list; a compromised token is valid until it expires.
type JWTService struct {
	secret     []byte
	method     jwt.SigningMethod
	expMinutes int
}

// NewJWTService creates a token service for the given secret, signing
// algorithm name (HS256, HS384, HS512) and TTL in minutes. Unknown or
// non-HMAC algorithms fall back to HS256.
func NewJWTService(secret, algorithm string, expMinutes int) *JWTService {
	method := jwt.GetSigningMethod(strings.ToUpper(algorithm))
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTService{
		secret:     []byte(secret),
		method:     method,
		expMinutes: expMinutes,
	}
}

// Generate issues a signed token for the given user id, expiring after the
// configured TTL.
func (s *JWTService) Generate(userID uint) (string, error) {
	now := time.Now()
	exp := now.Add(time.Duration(s.expMinutes) * time.Minute)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// Verify decodes and validates a token string, checking the signature,
// the signing method family, and the expiry.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// SubjectUserID extracts the user id from the subject claim.
func (c *Claims) SubjectUserID() (uint, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("missing subject claim")
	}
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject claim: %q", c.Subject)
	}
	return uint(id), nil
}

// ExpMinutes returns the configured token TTL in minutes.
func (s *JWTService) ExpMinutes() int {
	return s.expMinutes
}
