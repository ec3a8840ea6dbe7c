package auth

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fintrack/models"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 90 * 24 * time.Hour
)

// Claims is the parsed jwt payload carried by both token kinds.
type Claims struct {
	UID      uint64 `json:"uid"`
	Username string `json:"username"`
	Type     string `json:"type"`

	jwt.StandardClaims
}

func GetCurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("CurrentUser").(*models.User)
	if !ok {
		return nil
	}

	return user
}

func signingKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func issueToken(user *models.User, kind string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UID:      user.ID,
		Username: user.Username,
		Type:     kind,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
}

// GenerateTokenPair issues the access/refresh pair returned by login,
// register and refresh.
func GenerateTokenPair(user *models.User) (access string, refresh string, err error) {
	if access, err = issueToken(user, TokenAccess, accessTokenTTL); err != nil {
		return "", "", err
	}
	if refresh, err = issueToken(user, TokenRefresh, refreshTokenTTL); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// ParseToken verifies the signature and the token kind.
func ParseToken(token string, kind string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims.Type != kind {
		return nil, errors.New("unexpected token type")
	}

	return claims, nil
}
