package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/ranking"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
	"github.com/shakemap/shakemap-api/pkg/utils"
)

// RankedShopResponse é uma loja com a distância, em km, arredondada para
// duas casas decimais
type RankedShopResponse struct {
	domain.Shop
	DistanceKm float64 `json:"distance_km"`
}

// parseCoordinates extrai lat e lon da query string. Retorna ok=false
// quando ausentes ou fora dos intervalos válidos.
func parseCoordinates(r *http.Request) (lat, lon float64, ok bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}

	return lat, lon, true
}

func toRankedResponse(shops []domain.RankedShop) []RankedShopResponse {
	response := make([]RankedShopResponse, 0, len(shops))
	for _, ranked := range shops {
		response = append(response, RankedShopResponse{
			Shop:       ranked.Shop,
			DistanceKm: utils.RoundWithTwoDecimalPlace(ranked.DistanceKm),
		})
	}
	return response
}

// GetNearestShops retorna as lojas mais próximas do usuário. Sem
// coordenadas válidas a resposta recua para o conjunto fixo, sem
// distâncias, para o aplicativo sempre ter o que exibir.
func GetNearestShops(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		lat, lon, ok := parseCoordinates(r)
		if !ok {
			json.NewEncoder(w).Encode(map[string]any{
				"shops":    domain.CoreShops(),
				"fallback": true,
			})
			return
		}

		shops := service.NearestShops(r.Context(), lat, lon)
		json.NewEncoder(w).Encode(map[string]any{
			"shops":    toRankedResponse(shops),
			"fallback": false,
		})
	}
}

// GetShakeOfTheDay retorna a loja em destaque para a localização do
// usuário
func GetShakeOfTheDay(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, lon, ok := parseCoordinates(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrLocationRequired, "Coordenadas lat e lon são obrigatórias", nil)
			return
		}

		pick := service.ShakeOfTheDay(r.Context(), lat, lon)
		if pick == nil {
			apiErrors.WriteError(w, apiErrors.ErrShopNotFound, "Nenhuma loja elegível para o destaque do dia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RankedShopResponse{
			Shop:       pick.Shop,
			DistanceKm: utils.RoundWithTwoDecimalPlace(pick.DistanceKm),
		})
	}
}
