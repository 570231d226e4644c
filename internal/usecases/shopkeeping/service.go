package shopkeeping

import (
	"context"
	"time"

	"github.com/shakemap/shakemap-api/infrastructure/integrator/places"
	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/shakemap/shakemap-api/internal/usecases/ranking"
	"github.com/shakemap/shakemap-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// NewShop é o payload de cadastro de uma nova loja
type NewShop struct {
	Name            string   `json:"name"`
	Area            string   `json:"area"`
	Address         string   `json:"address"`
	GooglePlaceID   string   `json:"google_place_id"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Rating          *float64 `json:"rating"`
	MilkshakePrice  *float64 `json:"milkshake_price"`
	ThickshakePrice *float64 `json:"thickshake_price"`
}

type ShopDirectory interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	AddShop(ctx context.Context, input NewShop) (*domain.Shop, error)
	Subscribe(ctx context.Context, onSnapshot func([]domain.Shop)) (func(), error)
	SeedCoreShops(ctx context.Context) error
}

type Service struct {
	shopRepo      repository.ShopRepository
	placesService places.PlacesIntegrator
}

func NewService(shopRepo repository.ShopRepository, placesService places.PlacesIntegrator) ShopDirectory {
	return &Service{
		shopRepo:      shopRepo,
		placesService: placesService,
	}
}

// ListShops retorna o catálogo completo: o conjunto fixo mesclado com as
// lojas cadastradas pelos usuários. Em caso de duplicidade de id, a versão
// cadastrada prevalece.
func (s *Service) ListShops(ctx context.Context) ([]domain.Shop, error) {
	dynamic, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	return ranking.Merge(domain.CoreShops(), dynamic), nil
}

// GetShop busca uma loja pelo id, consultando primeiro o banco e depois o
// conjunto fixo
func (s *Service) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	shop, err := s.shopRepo.GetShopByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if shop != nil {
		return shop, nil
	}

	for _, core := range domain.CoreShops() {
		if core.ID == id {
			coreCopy := core
			return &coreCopy, nil
		}
	}

	return nil, ErrShopNotFound
}

// AddShop cadastra uma nova loja. Quando a loja veio de uma sugestão do
// Google Places, os detalhes (endereço e coordenadas) são preenchidos a
// partir da integração e o cadastro é recusado se o estabelecimento já
// estiver no catálogo.
func (s *Service) AddShop(ctx context.Context, input NewShop) (*domain.Shop, error) {
	if input.Name == "" && input.GooglePlaceID == "" {
		return nil, ErrMissingShopName
	}

	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		return nil, ErrInvalidRating
	}

	shop := &domain.Shop{
		Name:            input.Name,
		Area:            input.Area,
		Address:         input.Address,
		GooglePlaceID:   input.GooglePlaceID,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Rating:          input.Rating,
		MilkshakePrice:  input.MilkshakePrice,
		ThickshakePrice: input.ThickshakePrice,
	}

	if input.GooglePlaceID != "" {
		existing, err := s.shopRepo.GetShopByPlaceID(ctx, input.GooglePlaceID)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			return nil, &ShopAlreadyExistsError{ExistingID: existing.ID}
		}

		if err := s.fillFromPlaces(shop); err != nil {
			logrus.WithError(err).WithField("place_id", input.GooglePlaceID).
				Warn("Erro ao buscar detalhes do estabelecimento, seguindo com os dados informados")
		}
	}

	if shop.Name == "" {
		return nil, ErrMissingShopName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shop.ID = id
	shop.CreatedAt = &now
	shop.UpdatedAt = &now

	return s.shopRepo.CreateShop(ctx, shop)
}

func (s *Service) fillFromPlaces(shop *domain.Shop) error {
	if s.placesService == nil {
		return nil
	}

	details, err := s.placesService.GetShopDetails(shop.GooglePlaceID)
	if err != nil {
		return err
	}

	if shop.Name == "" {
		shop.Name = details.Name
	}

	if shop.Address == "" {
		shop.Address = details.Address
	}

	if shop.Latitude == nil || shop.Longitude == nil {
		lat, lng := details.Latitude, details.Longitude
		shop.Latitude = &lat
		shop.Longitude = &lng
	}

	return nil
}

// Subscribe entrega um snapshot inicial do catálogo e reenvia um novo
// snapshot a cada alteração nas lojas cadastradas, até o cancelamento.
// A função retornada encerra a assinatura.
func (s *Service) Subscribe(ctx context.Context, onSnapshot func([]domain.Shop)) (func(), error) {
	changes, stop, err := s.shopRepo.WatchShops(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := func() {
		shops, err := s.ListShops(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao montar snapshot do catálogo de lojas")
			return
		}
		onSnapshot(shops)
	}

	go func() {
		snapshot()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				snapshot()
			}
		}
	}()

	return stop, nil
}

// SeedCoreShops grava o conjunto fixo de lojas no banco de forma
// idempotente
func (s *Service) SeedCoreShops(ctx context.Context) error {
	for _, shop := range domain.CoreShops() {
		shopCopy := shop
		if err := s.shopRepo.UpsertShop(ctx, &shopCopy); err != nil {
			return err
		}
	}

	return nil
}
