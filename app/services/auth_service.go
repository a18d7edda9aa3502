package services

import (
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 30 * 24 * time.Hour

// ErrInvalidToken covers every way a presented token can fail verification:
// missing, malformed, bad signature, expired. Callers respond 401 uniformly.
var ErrInvalidToken = errors.New("invalid token")

// AuthUser is the identity embedded in a bearer token.
type AuthUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// AuthService issues and verifies the stateless bearer tokens that guard the
// admin surface. There is no revocation list; a token is good until expiry.
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, secret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
	}
}

// Login checks the credentials and returns a signed token embedding the
// user. Unknown user and wrong password are deliberately plain errors, not
// typed ones: the admin login surfaces them as a generic server failure with
// the message intact, matching the platform's long-standing behavior.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", validationf("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("user not found")
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid password")
	}

	return s.sign(user)
}

// VerifyToken parses and verifies a bearer token, returning the embedded
// user identity.
func (s *AuthService) VerifyToken(tokenString string) (*AuthUser, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	embedded, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, ErrInvalidToken
	}
	id, ok := embedded["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := embedded["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &AuthUser{ID: int(id), Email: email}, nil
}

// sign issues an HS256 token with the user identity embedded in a "user"
// claim and a 30-day expiry.
func (s *AuthService) sign(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
		},
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
