package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/customcabinetco/storefront-backend/api/responses"
	"github.com/customcabinetco/storefront-backend/api/validators"
	cartsvc "github.com/customcabinetco/storefront-backend/internal/cart"
	"github.com/customcabinetco/storefront-backend/internal/catalog"
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// CartItemRequest adds one configuration to the cart. The unit price is
// computed server-side from the catalog, then frozen on the line item.
type CartItemRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	Finish    string    `json:"finish" validate:"required"`
	Size      SizeInput `json:"size"`
	Qty       string    `json:"qty"`
}

// QuantityRequest updates the quantity of one cart line.
type QuantityRequest struct {
	Qty string `json:"qty" validate:"required"`
}

// CartView is the cart snapshot plus its running subtotal.
type CartView struct {
	Items    []cartsvc.LineItem `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

func newCartView(items []cartsvc.LineItem) CartView {
	if items == nil {
		items = []cartsvc.LineItem{}
	}
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return CartView{Items: items, Subtotal: subtotal.Round(2)}
}

// CartFetch returns the current cart snapshot.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		items, err := svc.Items(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(items))
	}
}

// CartItemAdd prices the requested configuration and merges it into the cart.
func CartItemAdd(svc cartsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload CartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.GetByID(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		finish, err := enums.ParseFinish(payload.Finish)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown finish"))
			return
		}

		size := pricing.ParseSize(payload.Size.W, payload.Size.H, payload.Size.D)
		quote := pricing.Quote(product.BasePrice, size, finish, product.Rules, product.Bounds)

		items, err := svc.Add(r.Context(), cartsvc.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Finish:    finish,
			Size:      quote.NormalizedSize,
			Qty:       cartsvc.NormalizeQuantity(payload.Qty),
			UnitPrice: quote.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(items))
	}
}

// CartQuantityUpdate sets the quantity of the line at the index.
func CartQuantityUpdate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		index, err := lineIndexFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload QuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.UpdateQuantity(r.Context(), index, payload.Qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(items))
	}
}

// CartItemRemove deletes the line at the index.
func CartItemRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		index, err := lineIndexFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Remove(r.Context(), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(items))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(nil))
	}
}

func lineIndexFromURL(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart index")
	}
	return index, nil
}
