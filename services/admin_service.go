package services

import (
	"Alkhabir/models"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const adminSessionTTL = 12 * time.Hour

// AdminClaims are carried by admin console session tokens.
type AdminClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AdminService authenticates the admin console and issues session tokens.
type AdminService struct {
	username     string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

func NewAdminService(username, passwordHash, secret string) *AdminService {
	return &AdminService{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		now:          time.Now,
	}
}

// Login checks the credentials and returns a signed HS256 session.
func (s *AdminService) Login(username, password string) (*models.AdminSession, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expires := now.Add(adminSessionTTL)
	claims := AdminClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}
	return &models.AdminSession{Token: token, ExpiresAt: expires.Unix()}, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AdminService) ParseToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Role != models.RoleAdmin {
		return nil, errors.New("token does not carry the admin role")
	}
	return claims, nil
}
