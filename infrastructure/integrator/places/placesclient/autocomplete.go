package placesclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	placesdomain "github.com/shakemap/shakemap-api/infrastructure/integrator/places/domain"
)

type responseAutocomplete struct {
	Status      string `json:"status"`
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

// Autocomplete busca sugestões de estabelecimentos para o texto digitado.
// Quando latitude e longitude são informadas os resultados são enviesados
// para a região do usuário.
func (c *PlacesClient) Autocomplete(input string, latitude, longitude *float64) ([]placesdomain.Suggestion, error) {
	params := url.Values{}
	params.Add("input", input)
	params.Add("key", c.Cfg.Places.APIKey)

	if latitude != nil && longitude != nil {
		params.Add("location", fmt.Sprintf("%f,%f", *latitude, *longitude))
		params.Add("radius", "50000")
	}

	reqURL := c.Cfg.Places.BaseURL + "/autocomplete/json?" + params.Encode()

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar autocomplete do Places")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places autocomplete retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response responseAutocomplete
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do autocomplete")
		return nil, err
	}

	if response.Status != "OK" && response.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places autocomplete retornou status %s", response.Status)
	}

	suggestions := make([]placesdomain.Suggestion, 0, len(response.Predictions))
	for _, prediction := range response.Predictions {
		suggestions = append(suggestions, placesdomain.Suggestion{
			PlaceID:     prediction.PlaceID,
			Description: prediction.Description,
		})
	}

	return suggestions, nil
}
