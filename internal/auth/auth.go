package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "tankbudget"

// DefaultTokenTTL is used when JWT_TTL is not set.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	ErrUnauthorized       = errors.New("you are not authorized to access this resource")
	ErrTokenMissing       = fmt.Errorf("%w: the Authorization header must contain a bearer token", ErrUnauthorized)
	ErrTokenInvalid       = fmt.Errorf("%w: the token is invalid or expired", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrSecretNotSet       = errors.New("the environment variable JWT_SECRET must be set")
)

// Claims are the claims of an access token. The subject is the user ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok || s == "" {
		return nil, ErrSecretNotSet
	}

	return []byte(s), nil
}

// CheckConfig verifies that tokens can be issued with the configuration
// from the environment.
func CheckConfig() error {
	if _, err := secret(); err != nil {
		return err
	}

	_, err := ttl()
	return err
}

func ttl() (time.Duration, error) {
	value, ok := os.LookupEnv("JWT_TTL")
	if !ok {
		return DefaultTokenTTL, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("JWT_TTL is not a valid duration: %w", err)
	}

	return d, nil
}

// NewToken issues a signed access token for the user.
func NewToken(userID uuid.UUID, email string) (string, time.Time, error) {
	key, err := secret()
	if err != nil {
		return "", time.Time{}, err
	}

	validity, err := ttl()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ParseToken verifies the token and returns the ID of the user it was issued for.
func ParseToken(token string) (uuid.UUID, error) {
	key, err := secret()
	if err != nil {
		return uuid.Nil, err
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return id, nil
}

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports if the password matches the bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
