package controllers

import (
	"net/http"

	"github.com/customcabinetco/storefront-backend/api/responses"
	"github.com/customcabinetco/storefront-backend/api/validators"
	"github.com/customcabinetco/storefront-backend/internal/catalog"
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// SizeInput carries raw form values for one dimension triple. Values that do
// not parse degrade to zero and clamp back into the product's bounds.
type SizeInput struct {
	W string `json:"w"`
	H string `json:"h"`
	D string `json:"d"`
}

// QuoteRequest asks for a live price preview of one configuration.
type QuoteRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	Finish    string    `json:"finish" validate:"required"`
	Size      SizeInput `json:"size"`
}

// QuoteResponse returns the priced configuration for rendering.
type QuoteResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	pricing.Result
}

// PricingQuote prices a configuration against the catalog rules. Called on
// every configuration change and again when the item is added to the cart.
func PricingQuote(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetByID(payload.ProductID)
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
		result := pricing.Quote(product.BasePrice, size, finish, product.Rules, product.Bounds)

		responses.WriteSuccess(w, QuoteResponse{
			ProductID: product.ID,
			Name:      product.Name,
			Result:    result,
		})
	}
}
