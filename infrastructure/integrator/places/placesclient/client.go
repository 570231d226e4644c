package placesclient

import (
	"net/http"
	"time"

	placesdomain "github.com/shakemap/shakemap-api/infrastructure/integrator/places/domain"
	"github.com/shakemap/shakemap-api/internal/config"
)

type Client interface {
	Autocomplete(input string, latitude, longitude *float64) ([]placesdomain.Suggestion, error)
	Details(placeID string) (*placesdomain.Place, error)
}

type PlacesClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &PlacesClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return client
}
