package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"

	"haulflow/store"
)

func newStoreRepository(t *testing.T) *StoreRepository {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	return NewStoreRepository(store.NewSerial(fs), node)
}

func TestStoreRepository_CreateAndGet(t *testing.T) {
	repo := newStoreRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, CreateUserParams{
		Username:     "alice",
		PasswordHash: "hash",
		AccountType:  AccountTypeDriver,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("create must assign an identifier")
	}

	byName, err := repo.GetUserByUsername(ctx, "ALICE")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Fatalf("lookup by username returned wrong user: %+v", byName)
	}

	byID, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID != user {
		t.Fatalf("lookup by id mismatch:\n got %+v\nwant %+v", byID, user)
	}

	if _, err := repo.GetUserByID(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStoreRepository_DuplicateUsername(t *testing.T) {
	repo := newStoreRepository(t)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, CreateUserParams{Username: "alice"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := repo.CreateUser(ctx, CreateUserParams{Username: "Alice"}); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestStoreRepository_MissingUsersCollection(t *testing.T) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"proposals": [], "offers": []}`), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	repo := NewStoreRepository(store.NewSerial(store.NewFileStore(path)), node)

	if _, err := repo.GetUserByUsername(context.Background(), "alice"); !errors.Is(err, store.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
	if _, err := repo.CreateUser(context.Background(), CreateUserParams{Username: "alice"}); !errors.Is(err, store.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument on create, got %v", err)
	}
}
