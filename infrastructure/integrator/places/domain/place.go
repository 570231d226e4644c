package domain

// Suggestion é um resultado de autocomplete, ainda sem coordenadas
type Suggestion struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}

// Place é o detalhe completo de um estabelecimento no Google Places
type Place struct {
	PlaceID   string  `json:"placeId"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
