package places

import (
	placesdomain "github.com/shakemap/shakemap-api/infrastructure/integrator/places/domain"
	"github.com/shakemap/shakemap-api/infrastructure/integrator/places/placesclient"
	"github.com/shakemap/shakemap-api/internal/config"
)

type PlacesIntegrator interface {
	SearchShops(input string, latitude, longitude *float64) ([]placesdomain.Suggestion, error)
	GetShopDetails(placeID string) (*placesdomain.Place, error)
}

type PlacesService struct {
	cfg    *config.Config
	Client placesclient.Client
}

func New(cfg *config.Config, client placesclient.Client) PlacesIntegrator {
	return &PlacesService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PlacesService) SearchShops(input string, latitude, longitude *float64) ([]placesdomain.Suggestion, error) {
	return s.Client.Autocomplete(input, latitude, longitude)
}

func (s *PlacesService) GetShopDetails(placeID string) (*placesdomain.Place, error) {
	return s.Client.Details(placeID)
}
