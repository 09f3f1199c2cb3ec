// Package proposal owns the search/filter engine and the lifecycle of
// shipment proposals ("contracts" on the HTTP surface).
package proposal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"haulflow/store"
)

// ErrNotFound signals the requested proposal does not exist.
var ErrNotFound = errors.New("proposal: not found")

// Service answers search/list requests over the snapshot store and owns
// the create/update lifecycle of proposal records.
type Service struct {
	db   *store.Serial
	node *snowflake.Node
}

// NewService builds a Service on top of the serialized store.
func NewService(db *store.Serial, node *snowflake.Node) *Service {
	return &Service{db: db, node: node}
}

// CreateParams enumerates the caller-supplied fields of a new proposal.
// Identifier and creation timestamp are assigned by Create.
type CreateParams struct {
	From         store.GeoPoint
	To           store.GeoPoint
	Price        float64
	Weight       float64
	Volume       float64
	ManPower     int
	Fragile      bool
	Cooling      bool
	RideAlong    bool
	MoveDateTime string
	Status       string
}

// UpdateParams is a partial payload: nil fields keep the existing value.
// The identifier is not part of the payload and is always preserved.
type UpdateParams struct {
	From         *store.GeoPoint
	To           *store.GeoPoint
	Price        *float64
	Weight       *float64
	Volume       *float64
	ManPower     *int
	Fragile      *bool
	Cooling      *bool
	RideAlong    *bool
	MoveDateTime *string
	Status       *string
}

// Search returns the proposals matching criteria, preserving the
// collection's insertion order. Empty criteria return the full collection.
func (s *Service) Search(ctx context.Context, criteria Criteria) ([]store.Proposal, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Proposals == nil {
		return nil, fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
	}

	matched := make([]store.Proposal, 0, len(snap.Proposals))
	for _, p := range snap.Proposals {
		if criteria.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ListByRequester returns all proposals created by userID, optionally
// narrowed by a case-insensitive exact status match.
func (s *Service) ListByRequester(ctx context.Context, userID int64, status string) ([]store.Proposal, error) {
	snap, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Proposals == nil {
		return nil, fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
	}

	out := make([]store.Proposal, 0, 8)
	for _, p := range snap.Proposals {
		if p.RequesterID != userID {
			continue
		}
		if status != "" && !strings.EqualFold(p.Status, status) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID returns the single proposal with the given identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (store.Proposal, error) {
	snap, err := s.db.Load(ctx)
	if err != nil {
		return store.Proposal{}, err
	}
	if snap.Proposals == nil {
		return store.Proposal{}, fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
	}

	for _, p := range snap.Proposals {
		if p.ID == id {
			return p, nil
		}
	}
	return store.Proposal{}, ErrNotFound
}

// Create assigns a fresh identifier and creation timestamp, appends the
// record to the collection, and persists it.
func (s *Service) Create(ctx context.Context, requesterID int64, params CreateParams) (store.Proposal, error) {
	rec := store.Proposal{
		ID:           s.node.Generate().Int64(),
		RequesterID:  requesterID,
		From:         params.From,
		To:           params.To,
		Price:        params.Price,
		Weight:       params.Weight,
		Volume:       params.Volume,
		ManPower:     params.ManPower,
		Fragile:      params.Fragile,
		Cooling:      params.Cooling,
		RideAlong:    params.RideAlong,
		MoveDateTime: params.MoveDateTime,
		Status:       params.Status,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.db.Update(ctx, func(snap *store.Snapshot) error {
		if snap.Proposals == nil {
			return fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
		}
		snap.Proposals = append(snap.Proposals, rec)
		return nil
	})
	if err != nil {
		return store.Proposal{}, err
	}
	return rec, nil
}

// Update merges params onto the existing record and persists the result.
// Only non-nil fields overwrite; the identifier always survives.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (store.Proposal, error) {
	var updated store.Proposal

	err := s.db.Update(ctx, func(snap *store.Snapshot) error {
		if snap.Proposals == nil {
			return fmt.Errorf("%w: proposals collection missing", store.ErrCorruptDocument)
		}
		for i := range snap.Proposals {
			if snap.Proposals[i].ID != id {
				continue
			}
			merge(&snap.Proposals[i], params)
			updated = snap.Proposals[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return store.Proposal{}, err
	}
	return updated, nil
}

func merge(rec *store.Proposal, params UpdateParams) {
	if params.From != nil {
		rec.From = *params.From
	}
	if params.To != nil {
		rec.To = *params.To
	}
	if params.Price != nil {
		rec.Price = *params.Price
	}
	if params.Weight != nil {
		rec.Weight = *params.Weight
	}
	if params.Volume != nil {
		rec.Volume = *params.Volume
	}
	if params.ManPower != nil {
		rec.ManPower = *params.ManPower
	}
	if params.Fragile != nil {
		rec.Fragile = *params.Fragile
	}
	if params.Cooling != nil {
		rec.Cooling = *params.Cooling
	}
	if params.RideAlong != nil {
		rec.RideAlong = *params.RideAlong
	}
	if params.MoveDateTime != nil {
		rec.MoveDateTime = *params.MoveDateTime
	}
	if params.Status != nil {
		rec.Status = *params.Status
	}
}
