package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shakemap/shakemap-api/infrastructure/integrator/places"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// SearchPlaces faz o proxy do autocomplete do Google Places, com viés
// opcional para a localização do usuário
func SearchPlaces(service places.PlacesIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		if input == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro input é obrigatório", nil)
			return
		}

		var lat, lon *float64
		if latValue, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64); err == nil {
			if lonValue, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64); err == nil {
				lat = &latValue
				lon = &lonValue
			}
		}

		suggestions, err := service.SearchShops(input, lat, lon)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar autocomplete de estabelecimentos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar estabelecimentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"suggestions": suggestions,
		})
	}
}

// GetPlaceDetails faz o proxy dos detalhes de um estabelecimento
func GetPlaceDetails(service places.PlacesIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if placeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do estabelecimento não fornecido", nil)
			return
		}

		place, err := service.GetShopDetails(placeID)
		if err != nil {
			logrus.WithError(err).WithField("place_id", placeID).Error("Erro ao buscar detalhes do estabelecimento")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar detalhes do estabelecimento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(place)
	}
}
