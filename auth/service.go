package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"haulflow/store"
)

var (
	// ErrInvalidCredentials signals wrong username or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrWeakPassword signals password doesn't meet requirements.
	ErrWeakPassword = errors.New("auth: password must be at least 8 characters")
	// ErrInvalidToken signals a missing, expired, or tampered token.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// DefaultTokenTTL matches the issuance window of the previous system.
const DefaultTokenTTL = 100 * time.Minute

// Service handles authentication business logic.
type Service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// LoginResult bundles the token and user returned after a successful login.
type LoginResult struct {
	Token string
	User  store.User
}

// NewService creates a new authentication service. A non-positive ttl
// falls back to DefaultTokenTTL.
func NewService(repo Repository, jwtSecret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  ttl,
	}
}

// Register creates a new user account and returns it with a signed token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (LoginResult, error) {
	if len(req.Password) < 8 {
		return LoginResult{}, ErrWeakPassword
	}
	if strings.TrimSpace(req.Username) == "" {
		return LoginResult{}, fmt.Errorf("auth: username is required")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: hash password: %w", err)
	}

	accountType := strings.TrimSpace(req.AccountType)
	if accountType == "" {
		accountType = AccountTypeCustomer
	}

	user, err := s.repo.CreateUser(ctx, CreateUserParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Birthdate:    req.Birthdate,
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(passwordHash),
		AccountType:  accountType,
	})
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: user}, nil
}

// Login authenticates a user and returns a JWT token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: user}, nil
}

// Refresh verifies an existing token and issues a fresh one carrying the
// same identity.
func (s *Service) Refresh(tokenString string) (string, error) {
	userID, username, err := s.VerifyToken(tokenString)
	if err != nil {
		return "", err
	}
	token, err := s.generateToken(userID, username)
	if err != nil {
		return "", fmt.Errorf("auth: generate token: %w", err)
	}
	return token, nil
}

// GetUserByID retrieves user information by ID.
func (s *Service) GetUserByID(ctx context.Context, userID int64) (store.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// IssueToken signs a fresh token for the given identity.
func (s *Service) IssueToken(userID int64, username string) (string, error) {
	return s.generateToken(userID, username)
}

// VerifyToken validates a JWT token and returns the user ID and username
// it was issued for.
func (s *Service) VerifyToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	// The user id travels as a decimal string: snowflake ids overflow the
	// float64 range JSON numbers decode into.
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return 0, "", fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: malformed user_id claim", ErrInvalidToken)
	}

	username, ok := claims["username"].(string)
	if !ok {
		return 0, "", fmt.Errorf("%w: missing username claim", ErrInvalidToken)
	}

	return userID, username, nil
}

func (s *Service) generateToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  strconv.FormatInt(userID, 10),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
