package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Service issues admin tokens. There is no user table; the single admin
// account comes from the environment (username + bcrypt password hash).
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwtSecret         []byte
}

func NewService(adminUsername, adminPasswordHash, jwtSecret string) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         []byte(jwtSecret),
	}
}

func (s *Service) Login(username, password string) (string, error) {
	if s.adminPasswordHash == "" {
		return "", errors.New("admin login not configured")
	}
	if username != s.adminUsername {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString(s.jwtSecret)
}
