package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/customcabinetco/storefront-backend/internal/cart"
	"github.com/customcabinetco/storefront-backend/internal/orders"
	"github.com/customcabinetco/storefront-backend/pkg/config"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
	"github.com/customcabinetco/storefront-backend/pkg/metrics"
	"github.com/customcabinetco/storefront-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Input carries the raw checkout form values. Identity fields are collected
// as entered; only presence gates apply, never format checks.
type Input struct {
	Customer        types.Customer
	Fulfillment     string
	DeliveryAddress types.Address
	CardName        string
	CardNumber      string
	CardExp         string
	CardCvv         string
}

// Totals is the money summary shown at checkout and frozen into the order.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Result reports an accepted attempt.
type Result struct {
	OrderID string `json:"order_id"`
	Totals  Totals `json:"totals"`
}

// Service runs a single checkout attempt over the current cart snapshot.
// Rejections come back as validation errors carrying the reason; the attempt
// is always re-enterable after one.
type Service interface {
	Attempt(ctx context.Context, input Input) (*Result, error)
	Summary(ctx context.Context, rawFulfillment string) (Totals, error)
}

type service struct {
	cart    cart.Service
	orders  orders.Repository
	cfg     config.CheckoutConfig
	metrics *metrics.CheckoutMetrics
	logg    *logger.Logger
}

// NewService builds the checkout coordinator.
func NewService(cartSvc cart.Service, ordersRepo orders.Repository, cfg config.CheckoutConfig, checkoutMetrics *metrics.CheckoutMetrics, logg *logger.Logger) (Service, error) {
	if cartSvc == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if cfg.OrderIDPrefix == "" {
		return nil, fmt.Errorf("order id prefix required")
	}
	return &service{
		cart:    cartSvc,
		orders:  ordersRepo,
		cfg:     cfg,
		metrics: checkoutMetrics,
		logg:    logg,
	}, nil
}

// Summary computes the live totals for the current cart and the selected
// fulfillment, for re-rendering the order summary on selection changes.
func (s *service) Summary(ctx context.Context, rawFulfillment string) (Totals, error) {
	fulfillment, err := enums.ParseFulfillment(strings.TrimSpace(rawFulfillment))
	if err != nil {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid fulfillment selection")
	}
	items, err := s.cart.Items(ctx)
	if err != nil {
		return Totals{}, err
	}
	return s.totals(items, fulfillment), nil
}

// Attempt validates the form against the cart snapshot taken at entry,
// records the order, and clears the cart. The cart is cleared only after the
// order write succeeded; a persistence failure leaves it intact for retry.
func (s *service) Attempt(ctx context.Context, input Input) (*Result, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		s.metrics.IncFailed()
		return nil, err
	}
	if len(items) == 0 {
		return nil, s.reject("cart empty")
	}

	fulfillment, err := enums.ParseFulfillment(strings.TrimSpace(input.Fulfillment))
	if err != nil {
		return nil, s.reject("invalid fulfillment selection")
	}

	if fulfillment == enums.FulfillmentDelivery && !input.DeliveryAddress.Complete() {
		return nil, s.reject("delivery address incomplete")
	}

	if strings.TrimSpace(input.CardName) == "" ||
		strings.TrimSpace(input.CardNumber) == "" ||
		strings.TrimSpace(input.CardExp) == "" ||
		strings.TrimSpace(input.CardCvv) == "" {
		return nil, s.reject("payment fields incomplete")
	}

	totals := s.totals(items, fulfillment)

	order := orders.Order{
		ID:          orders.NewID(s.cfg.OrderIDPrefix),
		CreatedAt:   time.Now().UTC(),
		Customer:    input.Customer.Trimmed(),
		Fulfillment: fulfillment,
		Items:       items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		Payment:     orders.Payment{Method: enums.PaymentMethodCardSimulated},
	}
	if fulfillment == enums.FulfillmentDelivery {
		address := input.DeliveryAddress.Trimmed()
		order.DeliveryAddress = &address
	}

	if err := s.orders.Append(ctx, order); err != nil {
		s.metrics.IncFailed()
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already recorded; failing the attempt now would invite
		// a duplicate submission. Surface the stale cart in the logs instead.
		if s.logg != nil {
			s.logg.Error(s.logg.WithOrderID(ctx, order.ID), "checkout.cart_clear_failed", err)
		}
	}

	s.metrics.IncAccepted()
	s.metrics.ObserveOrderValue(totals.Total.InexactFloat64())
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, order.ID), "checkout.accepted")
	}

	return &Result{OrderID: order.ID, Totals: totals}, nil
}

func (s *service) totals(items []cart.LineItem, fulfillment enums.Fulfillment) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	deliveryFee := decimal.Zero
	if fulfillment == enums.FulfillmentDelivery && subtotal.IsPositive() {
		deliveryFee = decimal.New(int64(s.cfg.DeliveryFeeCents), -2)
	}

	return Totals{
		Subtotal:    subtotal.Round(2),
		DeliveryFee: deliveryFee.Round(2),
		Total:       subtotal.Add(deliveryFee).Round(2),
	}
}

func (s *service) reject(reason string) *pkgerrors.Error {
	s.metrics.IncRejected()
	return pkgerrors.New(pkgerrors.CodeValidation, reason)
}
