package catalog

import (
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Product is a configurable cabinet as sold by the storefront.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Rules     pricing.Rules   `json:"pricing_rules"`
	Bounds    pricing.Bounds  `json:"bounds"`
}

// Service exposes read access to the product catalog.
type Service interface {
	List() []Product
	GetByID(id string) (*Product, error)
}

type service struct {
	products []Product
	byID     map[string]int
}

// NewService builds a catalog from the provided products, or the seed catalog
// when none are given.
func NewService(products ...Product) Service {
	if len(products) == 0 {
		products = seedProducts()
	}
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &service{products: products, byID: byID}
}

func (s *service) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) GetByID(id string) (*Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	product := s.products[i]
	return &product, nil
}
