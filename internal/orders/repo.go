package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/kv"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// CollectionKey is the blob key holding the order collection.
const CollectionKey = "orders/v1"

// Repository persists the append-only order collection.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Append(ctx context.Context, order Order) error
}

type repository struct {
	store kv.Store
	logg  *logger.Logger
}

// NewRepository builds an order repository over the provided blob store.
func NewRepository(store kv.Store, logg *logger.Logger) (Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	return &repository{store: store, logg: logg}, nil
}

// List returns every recorded order. A missing or corrupt blob reads as an
// empty collection.
func (r *repository) List(ctx context.Context) ([]Order, error) {
	raw, err := r.store.Get(ctx, CollectionKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []Order{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read order collection")
	}

	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		if r.logg != nil {
			r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), "orders.collection.corrupt")
		}
		return []Order{}, nil
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Append adds the order to the end of the collection and persists the whole
// snapshot.
func (r *repository) Append(ctx context.Context, order Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	raw, err := json.Marshal(orders)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order collection")
	}
	if err := r.store.Put(ctx, CollectionKey, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order collection")
	}
	return nil
}
