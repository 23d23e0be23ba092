package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/kv"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// SnapshotKey is the blob key holding the whole cart.
const SnapshotKey = "cart/v1"

// Service owns the live cart. Every mutation persists the full snapshot
// before returning, so a read in the same control flow observes it.
type Service interface {
	Items(ctx context.Context) ([]LineItem, error)
	Add(ctx context.Context, item LineItem) ([]LineItem, error)
	UpdateQuantity(ctx context.Context, index int, rawQty string) ([]LineItem, error)
	Remove(ctx context.Context, index int) ([]LineItem, error)
	Clear(ctx context.Context) error
}

type service struct {
	store kv.Store
	logg  *logger.Logger
}

// NewService builds a cart service over the provided blob store.
func NewService(store kv.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	return &service{store: store, logg: logg}, nil
}

// Items returns the current snapshot. A missing or corrupt blob reads as an
// empty cart so a damaged local store never blocks new activity.
func (s *service) Items(ctx context.Context) ([]LineItem, error) {
	raw, err := s.store.Get(ctx, SnapshotKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []LineItem{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read cart snapshot")
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.snapshot.corrupt")
		}
		return []LineItem{}, nil
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

// Add merges the item into an existing entry with the same line key, or
// appends it. Quantities below one are lifted to one.
func (s *service) Add(ctx context.Context, item LineItem) ([]LineItem, error) {
	if item.ProductID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if !item.Finish.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown finish")
	}
	if item.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}
	if item.Qty < 1 {
		item.Qty = 1
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	key := item.Key()
	merged := false
	for i := range items {
		if items[i].Key() == key {
			items[i].Qty += item.Qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity coerces the raw value to a positive integer and writes it to
// the entry at index.
func (s *service) UpdateQuantity(ctx context.Context, index int, rawQty string) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, indexError(index, len(items))
	}

	items[index].Qty = NormalizeQuantity(rawQty)

	if err := s.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the entry at index, shifting later entries down.
func (s *service) Remove(ctx context.Context, index int) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, indexError(index, len(items))
	}

	items = append(items[:index], items[index+1:]...)

	if err := s.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear deletes the snapshot key outright rather than writing an empty list.
func (s *service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, SnapshotKey); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart snapshot")
	}
	return nil
}

func (s *service) persist(ctx context.Context, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.store.Put(ctx, SnapshotKey, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart snapshot")
	}
	return nil
}

func indexError(index, size int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "cart index out of range").
		WithDetails(map[string]any{"index": index, "size": size})
}

// NormalizeQuantity turns a raw form value into a positive integer quantity:
// rounded half away from zero, floored at one, and one when the input does
// not parse at all.
func NormalizeQuantity(raw string) int {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 1
	}
	qty := int(math.Round(value))
	if qty < 1 {
		return 1
	}
	return qty
}
