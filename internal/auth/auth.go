package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"teamraw-backend/pkg/models"
)

// CookieName is the session cookie holding the admin JWT.
const CookieName = "admin_token"

// TokenTTL is the fixed session length. There is no refresh; a session ends
// at expiry and the admin must log in again.
const TokenTTL = 24 * time.Hour

// bcryptCost matches the cost the provisioning tool (cmd/hashpw) uses.
const bcryptCost = 10

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate admin accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers expired, tampered and malformed tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminNotFound is returned by FindAdmin for unknown emails.
	ErrAdminNotFound = errors.New("admin not found")
)

// Claims is the JWT payload for an admin session.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// DefaultAdmins is the static admin table. Hashes are generated out of band
// with cmd/hashpw; there is no registration endpoint.
var DefaultAdmins = []models.Admin{
	{
		Email: "admin@teamraw.com",
		// Password: admin123
		PasswordHash: "$2b$10$h7ufyonZZsUwUU9Gs88umu10zrklTv3b/3J2GIsy/FUmnyCha4vJO",
		Role:         "ADMIN",
		Name:         "Admin User",
	},
}

// Service verifies admin credentials and mints session tokens. The admin
// table and signing secret are fixed at construction and never mutated.
type Service struct {
	secret []byte
	admins []models.Admin
}

func NewService(secret string, admins []models.Admin) *Service {
	return &Service{secret: []byte(secret), admins: admins}
}

// FindAdmin looks up an admin by email, case-insensitively.
func (s *Service) FindAdmin(email string) (models.Admin, error) {
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return models.Admin{}, ErrAdminNotFound
}

// VerifyCredentials checks email+password against the admin table and
// returns the matching profile. Unknown email and wrong password both come
// back as ErrInvalidCredentials.
func (s *Service) VerifyCredentials(email, password string) (models.AdminProfile, error) {
	admin, err := s.FindAdmin(email)
	if err != nil {
		return models.AdminProfile{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.AdminProfile{}, ErrInvalidCredentials
	}
	return admin.Profile(), nil
}

// IssueToken signs an HS256 JWT carrying the admin's email and role, valid
// for TokenTTL from now.
func (s *Service) IssueToken(profile models.AdminProfile) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: profile.Email,
		Role:  profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature and expiry and returns the decoded claims.
// Callers log the underlying reason but must report only ErrInvalidToken
// to clients.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractToken pulls the session token from the Authorization header
// (Bearer scheme) or, failing that, the admin_token cookie.
func ExtractToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):], true
	}
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// HashPassword hashes a plaintext password for the static admin table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
