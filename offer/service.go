// Package offer manages driver offers attached to proposals.
package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"

	"haulflow/store"
)

// ErrContractNotFound signals the referenced contract does not exist.
var ErrContractNotFound = errors.New("offer: contract not found")

// StatusPending is the initial status of a freshly created offer.
const StatusPending = "pending"

// Service exposes offer listing and creation over the snapshot store.
type Service struct {
	db   *store.Serial
	node *snowflake.Node
}

// NewService builds a Service on top of the serialized store.
func NewService(db *store.Serial, node *snowflake.Node) *Service {
	return &Service{db: db, node: node}
}

// CreateParams enumerates the caller-supplied fields of a new offer.
type CreateParams struct {
	Price  float64
	Status string
}

// ListByContract returns all offers referencing contractID. Zero matches
// over a present collection is a valid empty result; a missing offers
// collection is a data-integrity failure.
func (s *Service) ListByContract(ctx context.Context, contractID int64) ([]store.Offer, error) {
	snap, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Offers == nil {
		return nil, fmt.Errorf("%w: offers collection missing", store.ErrCorruptDocument)
	}

	out := make([]store.Offer, 0, 4)
	for _, o := range snap.Offers {
		if o.ContractID == contractID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Create appends a new offer after verifying the referenced contract
// exists. Contracts are never deleted, so the reference stays valid.
func (s *Service) Create(ctx context.Context, driverID, contractID int64, params CreateParams) (store.Offer, error) {
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	rec := store.Offer{
		ID:         s.node.Generate().Int64(),
		ContractID: contractID,
		DriverID:   driverID,
		Price:      params.Price,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	err := s.db.Update(ctx, func(snap *store.Snapshot) error {
		if snap.Offers == nil {
			return fmt.Errorf("%w: offers collection missing", store.ErrCorruptDocument)
		}
		if snap.Proposals == nil {
			return fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
		}
		found := false
		for _, p := range snap.Proposals {
			if p.ID == contractID {
				found = true
				break
			}
		}
		if !found {
			return ErrContractNotFound
		}
		snap.Offers = append(snap.Offers, rec)
		return nil
	})
	if err != nil {
		return store.Offer{}, err
	}
	return rec, nil
}
