package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
	"pixel_portfolio/internal/token"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit

	bearerScheme = "Bearer"
)

// Client-facing messages.
const (
	msgCredentialsRequired = "username and password are required"
	msgUsernameTooShort    = "username must be at least 3 characters"
	msgPasswordTooShort    = "password must be at least 6 characters"
	msgPasswordTooLong     = "password must be at most 72 bytes"
	msgUsernameTaken       = "username already exists"
	msgInvalidCredentials  = "invalid username or password"
	msgMissingToken        = "authentication token not provided"
	msgInvalidToken        = "invalid or expired token"
	msgUserNotFound        = "user not found"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService implements register / login / who-am-i on top of the
// credential store and the token codec. It holds no per-request state.
type AuthService struct {
	authRepo repository.Authorization
	tokens   *token.Codec
	cost     int

	dummyOnce sync.Once
	dummyHash []byte
}

type AuthOption func(*AuthService)

// WithBcryptCost overrides bcrypt.DefaultCost (tests use bcrypt.MinCost).
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) { s.cost = cost }
}

func NewAuthService(repo repository.Authorization, tokens *token.Codec, opts ...AuthOption) *AuthService {
	s := &AuthService{authRepo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the input, refuses taken usernames and stores a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.PublicUser, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return models.PublicUser{}, err
	}

	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.PublicUser{}, internalError("failed to register user", err)
	}
	if existing != nil {
		return models.PublicUser{}, newError(KindDuplicateUsername, msgUsernameTaken)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.PublicUser{}, internalError("failed to register user", err)
	}

	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		// lost a race with a concurrent register of the same name
		if errors.Is(err, repository.ErrDuplicate) {
			return models.PublicUser{}, newError(KindDuplicateUsername, msgUsernameTaken)
		}
		return models.PublicUser{}, internalError("failed to register user", err)
	}
	return models.PublicUser{ID: id, Username: username}, nil
}

// Login checks the password and issues a token. Unknown user and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return LoginResult{}, err
	}

	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, internalError("failed to log in", err)
	}
	if u == nil {
		// burn the same bcrypt time as a real comparison
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return LoginResult{}, newError(KindInvalidCreds, msgInvalidCredentials)
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, newError(KindInvalidCreds, msgInvalidCredentials)
	}

	tok, err := s.tokens.Encode(token.Claims{Subject: u.ID, Username: u.Username})
	if err != nil {
		return LoginResult{}, internalError("failed to issue token", err)
	}
	return LoginResult{
		Token: tok,
		User:  models.PublicUser{ID: u.ID, Username: u.Username},
	}, nil
}

// CurrentUserID resolves the bearer token in an Authorization header to a
// user id without touching the store.
func (s *AuthService) CurrentUserID(_ context.Context, authorization string) (int64, error) {
	raw, ok := bearerToken(authorization)
	if !ok {
		return 0, newError(KindMissingToken, msgMissingToken)
	}
	claims, err := s.tokens.Decode(raw)
	if err != nil {
		return 0, &Error{Kind: KindInvalidToken, Message: msgInvalidToken, Err: err}
	}
	return claims.Subject, nil
}

// CurrentUser resolves the header to the stored user's public profile.
func (s *AuthService) CurrentUser(ctx context.Context, authorization string) (models.PublicUser, error) {
	id, err := s.CurrentUserID(ctx, authorization)
	if err != nil {
		return models.PublicUser{}, err
	}
	u, err := s.authRepo.GetByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, internalError("failed to load user", err)
	}
	if u == nil {
		return models.PublicUser{}, newError(KindUserNotFound, msgUserNotFound)
	}
	return u.Public(), nil
}

// bearerToken extracts the token from "Bearer <token>". The scheme match is
// case-sensitive.
func bearerToken(header string) (string, bool) {
	rest, ok := strings.CutPrefix(header, bearerScheme)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	tok := strings.TrimSpace(rest)
	return tok, tok != ""
}

func validateCredentials(username, password string) error {
	switch {
	case username == "" || strings.TrimSpace(password) == "":
		return validationError(msgCredentialsRequired)
	case len(username) < minUsernameLen:
		return validationError(msgUsernameTooShort)
	case len(password) < minPasswordLen:
		return validationError(msgPasswordTooShort)
	case len(password) > maxPasswordLen:
		return validationError(msgPasswordTooLong)
	}
	return nil
}

// helper: hash password safely
func (s *AuthService) hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), s.cost)
	})
	return s.dummyHash
}
