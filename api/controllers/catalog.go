package controllers

import (
	"net/http"

	"github.com/recellhq/recell-backend/api/responses"
	"github.com/recellhq/recell-backend/api/validators"
	"github.com/recellhq/recell-backend/internal/catalog"
	"github.com/recellhq/recell-backend/pkg/logger"
)

// ListBrands returns all active brands.
func ListBrands(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := svc.ListBrands(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brands)
	}
}

// ListDevices returns the active devices of one brand.
func ListDevices(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, err := validators.ParseUUIDParam(r, "brandID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		devices, err := svc.ListDevices(r.Context(), brandID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, devices)
	}
}

// ListVariants returns the active variants of one device, smallest storage
// first.
func ListVariants(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID, err := validators.ParseUUIDParam(r, "deviceID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		variants, err := svc.ListVariants(r.Context(), deviceID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, variants)
	}
}

// ListCities returns the serviceable pickup cities.
func ListCities(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cities, err := svc.ListCities(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cities)
	}
}
