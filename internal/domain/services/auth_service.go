package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/config"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

// TokenValiditySeconds is the fixed token lifetime returned as expiresIn
const TokenValiditySeconds = 28800

// InterfaceAuthService defines the authentication service interface
type InterfaceAuthService interface {
	LoginWorker(phone, pin string) (*LoginResult, error)
	LoginHost(phone, pin string) (*LoginResult, error)
	LoginManager(email, password string) (*LoginResult, error)
	GenerateToken(userID uint, role string) (string, error)
	ValidateToken(tokenString string) (*AuthClaims, error)
	Logout(tokenString string) error
}

// LoginResult represents a successful login
type LoginResult struct {
	User      map[string]interface{} `json:"user"`
	Token     string                 `json:"token"`
	Role      string                 `json:"role"`
	ExpiresIn int                    `json:"expiresIn"`
}

// AuthClaims is the verified claim set carried by a bearer token
type AuthClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles credential verification and token lifecycle. Every
// login follows one protocol: sanitize, shape-validate before any store
// access, look up the active record by its natural key, verify the bcrypt
// hash, then mint an HS256 token carrying role and user id.
type AuthService struct {
	secretKey string
	issuer    string
	Stores    *stores.Stores
	Blacklist InterfaceTokenBlacklistService
}

// NewAuthService creates a new authentication service. blacklist may be nil
// when no Redis is configured; logout then degrades to client-side discard.
func NewAuthService(cfg *config.Config, s *stores.Stores, blacklist InterfaceTokenBlacklistService) InterfaceAuthService {
	return &AuthService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "securaccess-http-service",
		Stores:    s,
		Blacklist: blacklist,
	}
}

// LoginWorker authenticates a worker by phone + PIN and bumps last_access
func (s *AuthService) LoginWorker(phone, pin string) (*LoginResult, error) {
	phone = utils.SanitizeInput(phone)
	pin = utils.SanitizeInput(pin)

	if !utils.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !utils.ValidatePIN(pin) {
		return nil, ErrInvalidPIN
	}

	worker, err := s.Stores.Workers.FindActiveByPhone(phone)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			// same error as a wrong PIN: never reveal whether the account exists
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckSecretHash(pin, worker.PinHash) {
		return nil, ErrBadCredentials
	}

	now := time.Now()
	if err := s.Stores.Workers.TouchLastAccess(worker.ID, now); err != nil {
		return nil, err
	}
	worker.LastAccess = &now

	token, err := s.GenerateToken(worker.ID, models.RoleWorker)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      worker.PublicProfile(),
		Token:     token,
		Role:      models.RoleWorker,
		ExpiresIn: TokenValiditySeconds,
	}, nil
}

// LoginHost authenticates a host by phone + PIN. The credential is only
// accepted inside the host's access date window.
func (s *AuthService) LoginHost(phone, pin string) (*LoginResult, error) {
	phone = utils.SanitizeInput(phone)
	pin = utils.SanitizeInput(pin)

	if !utils.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !utils.ValidatePIN(pin) {
		return nil, ErrInvalidPIN
	}

	host, err := s.Stores.Hosts.FindActiveByPhone(phone)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckSecretHash(pin, host.PinHash) {
		return nil, ErrBadCredentials
	}
	if !host.AccessWindowContains(time.Now()) {
		// generic refusal: the window state must not become an enumeration oracle
		return nil, ErrBadCredentials
	}

	token, err := s.GenerateToken(host.ID, models.RoleHost)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      host.PublicProfile(),
		Token:     token,
		Role:      models.RoleHost,
		ExpiresIn: TokenValiditySeconds,
	}, nil
}

// LoginManager authenticates a manager by email + password
func (s *AuthService) LoginManager(email, password string) (*LoginResult, error) {
	email = utils.SanitizeInput(email)
	password = utils.SanitizeInput(password)

	if !utils.ValidateEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.ValidatePassword(password) {
		return nil, ErrInvalidPassword
	}

	manager, err := s.Stores.Managers.FindActiveByEmail(email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckSecretHash(password, manager.PasswordHash) {
		return nil, ErrBadCredentials
	}

	token, err := s.GenerateToken(manager.ID, models.RoleManager)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      manager.PublicProfile(),
		Token:     token,
		Role:      models.RoleManager,
		ExpiresIn: TokenValiditySeconds,
	}, nil
}

// GenerateToken mints an HS256 token carrying user id and role
func (s *AuthService) GenerateToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValiditySeconds * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken verifies signature, expiry and the logout blacklist
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if s.Blacklist != nil && s.Blacklist.IsBlacklisted(tokenString) {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Logout invalidates a token for its remaining lifetime. Without a
// blacklist backend the token simply ages out at its expiry.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	if s.Blacklist == nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return s.Blacklist.Blacklist(tokenString, remaining)
}
