package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/id"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = 7 * 24 * time.Hour
	tokenIssuer     = "nfl-fantasy-pickem"
)

type AuthServiceConfig struct {
	Users      user.Repository
	IDs        id.Generator
	Clock      clock.Clock
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

type accessClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies HS256 access tokens for local accounts.
type AuthService struct {
	users      user.Repository
	ids        id.Generator
	clock      clock.Clock
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      cfg.Users,
		ids:        ids,
		clock:      clk,
		secret:     []byte(cfg.Secret),
		tokenTTL:   ttl,
		bcryptCost: cost,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: password cannot be hashed: %v", ErrInvalidInput, err)
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, user.ErrAlreadyExists) {
		return AuthResult{}, fmt.Errorf("%w: username or email already exists", ErrConflict)
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(created)
}

// Login accepts either the username or the email as login.
func (s *AuthService) Login(ctx context.Context, login, password string) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	found, exists, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by login: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.issue(found)
}

// VerifyAccessToken validates signature, algorithm and expiry.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: missing access token", ErrUnauthorized)
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}
	if claims.UserID <= 0 {
		return user.Principal{}, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	return user.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}

func (s *AuthService) issue(u user.User) (AuthResult, error) {
	jti, err := s.ids.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate token id: %w", err)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := accessClaims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign access token: %w", err)
	}

	u.PasswordHash = ""
	return AuthResult{Token: signed, ExpiresAt: expiresAt, User: u}, nil
}
