package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/reviewing"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
	"github.com/shakemap/shakemap-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type AddRatingRequest struct {
	Value float64 `json:"value"`
}

// AddShopRating registra a avaliação do usuário logado para uma loja
func AddShopRating(service reviewing.Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autenticação necessária para avaliar", nil)
			return
		}

		shopID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if shopID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		var req AddRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		rating, err := service.AddRating(r.Context(), shopID, userClaims.UserID, req.Value)
		if err != nil {
			switch {
			case errors.Is(err, reviewing.ErrInvalidRating):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRating, "Avaliação deve estar entre 0 e 5", nil)

			case errors.Is(err, reviewing.ErrShopNotFound):
				apiErrors.WriteError(w, apiErrors.ErrShopNotFound, "Loja não encontrada", nil)

			default:
				logrus.WithError(err).WithField("shop_id", shopID).Error("Erro ao registrar avaliação")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar avaliação", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rating)
	}
}
