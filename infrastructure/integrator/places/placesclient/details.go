package placesclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	placesdomain "github.com/shakemap/shakemap-api/infrastructure/integrator/places/domain"
)

type responseDetails struct {
	Status string `json:"status"`
	Result struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Details busca os detalhes de um estabelecimento pelo place_id
func (c *PlacesClient) Details(placeID string) (*placesdomain.Place, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "place_id,name,formatted_address,geometry")
	params.Add("key", c.Cfg.Places.APIKey)

	reqURL := c.Cfg.Places.BaseURL + "/details/json?" + params.Encode()

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar detalhes do Places")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places details retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response responseDetails
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON dos detalhes")
		return nil, err
	}

	if response.Status != "OK" {
		return nil, errors.New("place not found")
	}

	return &placesdomain.Place{
		PlaceID:   response.Result.PlaceID,
		Name:      response.Result.Name,
		Address:   response.Result.FormattedAddress,
		Latitude:  response.Result.Geometry.Location.Lat,
		Longitude: response.Result.Geometry.Location.Lng,
	}, nil
}
