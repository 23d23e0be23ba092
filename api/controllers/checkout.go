package controllers

import (
	"net/http"

	"github.com/customcabinetco/storefront-backend/api/responses"
	"github.com/customcabinetco/storefront-backend/api/validators"
	checkoutsvc "github.com/customcabinetco/storefront-backend/internal/checkout"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
	"github.com/customcabinetco/storefront-backend/pkg/types"
)

// CheckoutRequest carries the raw checkout form. Every field arrives as
// entered; trimming and presence gates happen in the coordinator.
type CheckoutRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Fulfillment string `json:"fulfillment"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CardName    string `json:"card_name"`
	CardNumber  string `json:"card_number"`
	CardExp     string `json:"card_exp"`
	CardCvv     string `json:"card_cvv"`
}

// CheckoutAttempt runs one checkout attempt. Accepted attempts return the
// order id for the confirmation redirect; rejections map to the standard
// error envelope with the reason.
func CheckoutAttempt(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload CheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Attempt(r.Context(), checkoutsvc.Input{
			Customer: types.Customer{
				FullName: payload.FullName,
				Email:    payload.Email,
				Phone:    payload.Phone,
			},
			Fulfillment: payload.Fulfillment,
			DeliveryAddress: types.Address{
				Line1: payload.Address1,
				Line2: payload.Address2,
				City:  payload.City,
				State: payload.State,
				Zip:   payload.Zip,
			},
			CardName:   payload.CardName,
			CardNumber: payload.CardNumber,
			CardExp:    payload.CardExp,
			CardCvv:    payload.CardCvv,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CheckoutSummary recomputes the totals for the selected fulfillment so the
// UI can re-render the order summary on selection changes.
func CheckoutSummary(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		totals, err := svc.Summary(r.Context(), r.URL.Query().Get("fulfillment"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, totals)
	}
}
