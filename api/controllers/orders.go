package controllers

import (
	"net/http"

	"github.com/customcabinetco/storefront-backend/api/responses"
	ordersrepo "github.com/customcabinetco/storefront-backend/internal/orders"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// OrderDetail returns one recorded order by id, for the confirmation page.
func OrderDetail(repo ordersrepo.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		order, err := repo.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
