package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"

	"haulflow/store"
)

var (
	// ErrUserNotFound signals that the user does not exist.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrDuplicateUsername signals that the username is already registered.
	ErrDuplicateUsername = errors.New("auth: username already exists")
)

// Repository handles data access for authentication.
type Repository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (store.User, error)
	GetUserByUsername(ctx context.Context, username string) (store.User, error)
	GetUserByID(ctx context.Context, userID int64) (store.User, error)
}

// CreateUserParams contains write parameters for creating users.
type CreateUserParams struct {
	FirstName    string
	LastName     string
	Birthdate    string
	Email        string
	Phone        string
	Username     string
	PasswordHash string
	AccountType  string
}

// StoreRepository implements Repository over the snapshot store.
type StoreRepository struct {
	db   *store.Serial
	node *snowflake.Node
}

// NewStoreRepository creates a snapshot-store-backed auth repository.
func NewStoreRepository(db *store.Serial, node *snowflake.Node) *StoreRepository {
	return &StoreRepository{db: db, node: node}
}

// CreateUser appends a new user, enforcing username uniqueness under the
// store's write lock.
func (r *StoreRepository) CreateUser(ctx context.Context, params CreateUserParams) (store.User, error) {
	user := store.User{
		ID:           r.node.Generate().Int64(),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Birthdate:    params.Birthdate,
		Email:        params.Email,
		Phone:        params.Phone,
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		AccountType:  params.AccountType,
	}

	err := r.db.Update(ctx, func(snap *store.Snapshot) error {
		if snap.Users == nil {
			return fmt.Errorf("%w: users collection missing", store.ErrCorruptDocument)
		}
		for _, u := range snap.Users {
			if strings.EqualFold(u.Username, params.Username) {
				return ErrDuplicateUsername
			}
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return store.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username (case-insensitive).
func (r *StoreRepository) GetUserByUsername(ctx context.Context, username string) (store.User, error) {
	snap, err := r.db.Load(ctx)
	if err != nil {
		return store.User{}, err
	}
	if snap.Users == nil {
		return store.User{}, fmt.Errorf("%w: users collection missing", store.ErrCorruptDocument)
	}

	for _, u := range snap.Users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return store.User{}, ErrUserNotFound
}

// GetUserByID retrieves a user by identifier.
func (r *StoreRepository) GetUserByID(ctx context.Context, userID int64) (store.User, error) {
	snap, err := r.db.Load(ctx)
	if err != nil {
		return store.User{}, err
	}
	if snap.Users == nil {
		return store.User{}, fmt.Errorf("%w: users collection missing", store.ErrCorruptDocument)
	}

	for _, u := range snap.Users {
		if u.ID == userID {
			return u, nil
		}
	}
	return store.User{}, ErrUserNotFound
}
