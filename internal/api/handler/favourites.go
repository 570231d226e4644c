package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/favouriting"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
	"github.com/shakemap/shakemap-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type ToggleFavouriteRequest struct {
	ShopID string `json:"shop_id"`
}

// resolveOwner identifica o dono das preferências: usuário autenticado ou,
// na ausência de token, o dispositivo informado no header X-Device-ID
func resolveOwner(r *http.Request) (string, bool) {
	if userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
		return fmt.Sprintf("user:%d", userClaims.UserID), true
	}

	if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
		return "device:" + deviceID, true
	}

	return "", false
}

// ListFavourites retorna os ids das lojas favoritas do dono
func ListFavourites(service favouriting.Favouriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := resolveOwner(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Autenticação ou header X-Device-ID é obrigatório", nil)
			return
		}

		favourites, err := service.List(r.Context(), owner)
		if err != nil {
			logrus.WithError(err).WithField("owner", owner).Error("Erro ao listar favoritos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar favoritos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"favourites": favourites,
		})
	}
}

// ToggleFavourite adiciona ou remove uma loja dos favoritos. Quando a
// escrita falha, a lista alterada ainda é devolvida com persisted=false
// para o aplicativo manter o estado otimista na tela.
func ToggleFavourite(service favouriting.Favouriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := resolveOwner(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Autenticação ou header X-Device-ID é obrigatório", nil)
			return
		}

		var req ToggleFavouriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ShopID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "shop_id é obrigatório", nil)
			return
		}

		favourites, err := service.Toggle(r.Context(), owner, req.ShopID)
		persisted := err == nil
		if err != nil {
			logrus.WithError(err).WithField("owner", owner).Warn("Falha ao persistir favoritos")
		}

		if favourites == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao alternar favorito", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"favourites": favourites,
			"persisted":  persisted,
		})
	}
}

// GetWalkthrough informa se o dono já viu o tutorial inicial
func GetWalkthrough(service favouriting.Favouriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := resolveOwner(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Autenticação ou header X-Device-ID é obrigatório", nil)
			return
		}

		seen, err := service.HasSeenWalkthrough(r.Context(), owner)
		if err != nil {
			logrus.WithError(err).WithField("owner", owner).Error("Erro ao consultar walkthrough")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar walkthrough", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{
			"has_seen_walkthrough": seen,
		})
	}
}

// MarkWalkthrough registra que o dono concluiu o tutorial inicial
func MarkWalkthrough(service favouriting.Favouriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := resolveOwner(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Autenticação ou header X-Device-ID é obrigatório", nil)
			return
		}

		if err := service.MarkWalkthroughSeen(r.Context(), owner); err != nil {
			logrus.WithError(err).WithField("owner", owner).Error("Erro ao registrar walkthrough")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar walkthrough", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
