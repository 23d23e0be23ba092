package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/customcabinetco/storefront-backend/api/responses"
	"github.com/customcabinetco/storefront-backend/internal/catalog"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/customcabinetco/storefront-backend/pkg/logger"
)

// ProductsList exposes the cabinet catalog.
func ProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.List())
	}
}

// ProductDetail exposes one catalog product with its rules and bounds.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		product, err := svc.GetByID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
