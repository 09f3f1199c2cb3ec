package offer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"

	"haulflow/store"
)

func newTestService(t *testing.T, snap store.Snapshot) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	if err := fs.Save(context.Background(), snap); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return NewService(store.NewSerial(fs), node)
}

func TestService_ListByContract(t *testing.T) {
	snap := store.NewSnapshot()
	snap.Proposals = append(snap.Proposals, store.Proposal{ID: 1}, store.Proposal{ID: 2})
	snap.Offers = append(snap.Offers,
		store.Offer{ID: 100, ContractID: 1, DriverID: 5},
		store.Offer{ID: 101, ContractID: 2, DriverID: 5},
		store.Offer{ID: 102, ContractID: 1, DriverID: 6},
	)
	svc := newTestService(t, snap)

	offers, err := svc.ListByContract(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers for contract 1, got %d", len(offers))
	}
	if offers[0].ID != 100 || offers[1].ID != 102 {
		t.Fatalf("relative order not preserved: %+v", offers)
	}
}

func TestService_ListByContractEmptyIsNotAnError(t *testing.T) {
	snap := store.NewSnapshot()
	snap.Proposals = append(snap.Proposals, store.Proposal{ID: 1})
	svc := newTestService(t, snap)

	offers, err := svc.ListByContract(context.Background(), 1)
	if err != nil {
		t.Fatalf("zero matches over a present collection must succeed, got %v", err)
	}
	if len(offers) != 0 {
		t.Fatalf("expected empty result, got %+v", offers)
	}
}

func TestService_MissingOffersCollection(t *testing.T) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"users": [], "proposals": []}`), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	svc := NewService(store.NewSerial(store.NewFileStore(path)), node)

	if _, err := svc.ListByContract(context.Background(), 1); !errors.Is(err, store.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestService_CreateMissingProposalsCollection(t *testing.T) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"users": [], "offers": []}`), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	svc := NewService(store.NewSerial(store.NewFileStore(path)), node)

	// An absent proposals collection is a data-integrity failure, not an
	// empty collection the contract happens to be missing from.
	_, err = svc.Create(context.Background(), 3, 7, CreateParams{Price: 55})
	if !errors.Is(err, store.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
	if errors.Is(err, ErrContractNotFound) {
		t.Fatalf("missing collection must not read as a missing contract: %v", err)
	}
}

func TestService_CreateChecksContractExists(t *testing.T) {
	snap := store.NewSnapshot()
	snap.Proposals = append(snap.Proposals, store.Proposal{ID: 7})
	svc := newTestService(t, snap)
	ctx := context.Background()

	created, err := svc.Create(ctx, 3, 7, CreateParams{Price: 55})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("create must assign id and timestamp: %+v", created)
	}
	if created.Status != StatusPending {
		t.Fatalf("default status = %q, want %q", created.Status, StatusPending)
	}

	offers, err := svc.ListByContract(ctx, 7)
	if err != nil {
		t.Fatalf("list after create: %v", err)
	}
	if len(offers) != 1 || offers[0] != created {
		t.Fatalf("created offer not persisted: %+v", offers)
	}

	if _, err := svc.Create(ctx, 3, 999, CreateParams{Price: 55}); !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}
