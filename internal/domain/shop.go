// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
	"time"
)

// Shop representa uma loja de milkshake, vinda do conjunto fixo (core) ou
// adicionada por usuários em tempo de execução (dynamic).
//
// Campos numéricos são ponteiros: ausência significa "ainda não informado".
// Uma loja sem coordenadas pode aparecer em listagens, mas nunca participa
// dos cálculos de ranking por distância.
type Shop struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Area            string     `json:"area,omitempty"`
	Address         string     `json:"address,omitempty"`
	GooglePlaceID   string     `json:"google_place_id,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Rating          *float64   `json:"rating,omitempty"`          // média atual em [0,5]
	RatingCount     *int       `json:"rating_count,omitempty"`
	RatingDelta24h  *float64   `json:"rating_delta_24h,omitempty"` // variação da média nas últimas 24h
	MilkshakePrice  *float64   `json:"milkshake_price,omitempty"`
	ThickshakePrice *float64   `json:"thickshake_price,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// HasCoordinates indica se a loja pode participar de cálculos por distância
func (s Shop) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// DeltaOrZero retorna o delta de avaliação das últimas 24h, tratando ausência como 0
func (s Shop) DeltaOrZero() float64 {
	if s.RatingDelta24h == nil {
		return 0
	}
	return *s.RatingDelta24h
}

// RatingOrZero retorna a média de avaliação, tratando ausência como 0.
// Uso restrito a comparações dentro do ranking; para exibição a ausência
// deve ser preservada.
func (s Shop) RatingOrZero() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}

// RankedShop é uma Shop enriquecida com a distância até o ponto de
// referência do usuário. Nunca é persistida: é recalculada a cada
// invocação porque o ponto de referência muda a cada sessão.
type RankedShop struct {
	Shop
	DistanceKm float64 `json:"distance_km"`
}

// RawShop é o formato frouxo com que documentos chegam do diretório remoto:
// campos numéricos podem vir como número, string ou nulo. A normalização
// para o formato estrito de Shop acontece em um único passo explícito
// (NormalizeShop), para que os algoritmos de ranking nunca lidem com
// entrada heterogênea.
type RawShop struct {
	ID              string
	Name            string
	Area            string
	Address         string
	GooglePlaceID   string
	Latitude        any
	Longitude       any
	Rating          any
	RatingAverage   any
	RatingCount     any
	RatingDelta24h  any
	MilkshakePrice  any
	ThickshakePrice any
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// NormalizeShop converte um documento frouxo no formato estrito de Shop.
// A coerção de cada campo é tentada uma única vez; falha permanente
// (não-número, NaN, infinito) equivale a campo ausente.
func NormalizeShop(raw RawShop) Shop {
	name := raw.Name
	if name == "" {
		name = "Unnamed shop"
	}

	shop := Shop{
		ID:              raw.ID,
		Name:            name,
		Area:            raw.Area,
		Address:         raw.Address,
		GooglePlaceID:   raw.GooglePlaceID,
		Latitude:        CoerceFloat(raw.Latitude),
		Longitude:       CoerceFloat(raw.Longitude),
		RatingDelta24h:  CoerceFloat(raw.RatingDelta24h),
		MilkshakePrice:  CoerceFloat(raw.MilkshakePrice),
		ThickshakePrice: CoerceFloat(raw.ThickshakePrice),
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.UpdatedAt,
	}

	// Agregado mantido pelo servidor tem precedência sobre o campo legado
	if avg := CoerceFloat(raw.RatingAverage); avg != nil {
		shop.Rating = avg
	} else {
		shop.Rating = CoerceFloat(raw.Rating)
	}

	if count := CoerceFloat(raw.RatingCount); count != nil {
		n := int(*count)
		shop.RatingCount = &n
	}

	return shop
}

// CoerceFloat tenta converter um valor frouxamente tipado em float64.
// Retorna nil para nulos, strings não numéricas, NaN e infinitos.
func CoerceFloat(v any) *float64 {
	var f float64

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		f = value
	case float32:
		f = float64(value)
	case int:
		f = float64(value)
	case int32:
		f = float64(value)
	case int64:
		f = float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
