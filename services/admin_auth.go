package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"league-history/logging"
)

const (
	adminSubject    = "admin"
	tokenIssuer     = "league-history"
	defaultTokenTTL = 12 * time.Hour
)

// AdminClaims are the claims carried by an admin token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuthService checks the admin password and issues tokens
type AdminAuthService struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
	now          func() time.Time
	logger       *logging.Logger
}

// NewAdminAuthService creates the service. An empty hash disables admin login.
func NewAdminAuthService(passwordHash, jwtSecret string, tokenTTL time.Duration) *AdminAuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AdminAuthService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		now:          time.Now,
		logger:       logging.WithPrefix("AdminAuth"),
	}
}

// HashPassword returns the bcrypt hash for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Enabled returns true when an admin password is configured
func (a *AdminAuthService) Enabled() bool {
	return len(a.passwordHash) > 0
}

// Login checks password and returns a signed admin token
func (a *AdminAuthService) Login(password string) (string, time.Time, error) {
	if !a.Enabled() {
		AdminLogins.WithLabelValues("disabled").Inc()
		return "", time.Time{}, ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		AdminLogins.WithLabelValues("rejected").Inc()
		a.logger.Warnf("Rejected admin login")
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expires, err := a.GenerateToken()
	if err != nil {
		AdminLogins.WithLabelValues("error").Inc()
		return "", time.Time{}, err
	}
	AdminLogins.WithLabelValues("accepted").Inc()
	a.logger.Infof("Admin logged in, token valid until %s", expires.Format(time.RFC3339))
	return token, expires, nil
}

// GenerateToken signs a new admin token
func (a *AdminAuthService) GenerateToken() (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.tokenTTL)
	claims := AdminClaims{
		Role: adminSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// ValidateToken validates an admin token and returns its claims
func (a *AdminAuthService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return a.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Role != adminSubject {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
