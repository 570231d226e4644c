package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/shopkeeping"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListShops retorna o catálogo completo de lojas
func ListShops(service shopkeeping.ShopDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := service.ListShops(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar lojas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(shops); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta da listagem de lojas")
		}
	}
}

// GetShop retorna os detalhes de uma loja específica
func GetShop(service shopkeeping.ShopDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if shopID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		shop, err := service.GetShop(r.Context(), shopID)
		if err != nil {
			if errors.Is(err, shopkeeping.ErrShopNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrShopNotFound, "Loja não encontrada", nil)
				return
			}

			logrus.WithError(err).WithField("shop_id", shopID).Error("Erro ao buscar loja")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(shop)
	}
}

// AddShop cadastra uma nova loja no catálogo
func AddShop(service shopkeeping.ShopDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shopkeeping.NewShop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		shop, err := service.AddShop(r.Context(), req)
		if err != nil {
			if existsErr, ok := shopkeeping.IsShopAlreadyExists(err); ok {
				apiErrors.WriteError(w, apiErrors.ErrShopAlreadyExists, "Loja já cadastrada", map[string]any{
					"existing_id": existsErr.ExistingID,
				})
				return
			}

			switch {
			case errors.Is(err, shopkeeping.ErrMissingShopName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da loja é obrigatório", nil)

			case errors.Is(err, shopkeeping.ErrInvalidRating):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRating, "Avaliação deve estar entre 0 e 5", nil)

			default:
				logrus.WithError(err).Error("Erro ao cadastrar loja")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar loja", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(shop)
	}
}

// StreamShops mantém uma conexão server-sent events que envia o catálogo
// completo a cada alteração, espelhando a assinatura em tempo real do
// aplicativo
func StreamShops(service shopkeeping.ShopDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		snapshots := make(chan []domain.Shop, 1)
		unsubscribe, err := service.Subscribe(r.Context(), func(shops []domain.Shop) {
			select {
			case snapshots <- shops:
			default:
				// Cliente lento descarta snapshots intermediários, o
				// próximo evento carrega o catálogo completo
			}
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao assinar alterações do catálogo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar streaming", nil)
			return
		}
		defer unsubscribe()

		for {
			select {
			case <-r.Context().Done():
				return
			case shops := <-snapshots:
				payload, err := json.Marshal(shops)
				if err != nil {
					logrus.WithError(err).Error("Erro ao serializar snapshot do catálogo")
					continue
				}

				if _, err := fmt.Fprintf(w, "event: shops\ndata: %s\n\n", payload); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
