// Package ranking implementa o núcleo de ranqueamento do ShakeMap: distância
// haversine, seleção das lojas mais próximas e a escolha do "Shake of the
// Day". Todas as funções deste arquivo são puras e determinísticas: para a
// mesma lista de entrada, na mesma ordem, o resultado é sempre o mesmo.
package ranking

import (
	"math"
	"sort"

	"github.com/shakemap/shakemap-api/internal/domain"
)

const (
	// EarthRadiusKm é o raio médio da Terra usado na fórmula haversine
	EarthRadiusKm = 6371.0

	// DefaultShakeRadiusKm é o raio padrão do Shake of the Day
	DefaultShakeRadiusKm = 10.0

	// DefaultNearestCount é o tamanho padrão da lista de lojas mais próximas
	DefaultNearestCount = 3
)

// DistanceKm calcula a distância de círculo máximo em quilômetros entre dois
// pontos geográficos em graus decimais, pela fórmula haversine. Entradas
// precisam ser números finitos; a filtragem de NaN/infinito é feita na
// normalização, antes de chegar aqui.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Merge combina o conjunto fixo de lojas com o conjunto dinâmico,
// deduplicando por id. Quando um id colide, o registro dinâmico vence (ele
// reflete agregados de avaliação ao vivo), mas mantém a posição do primeiro
// encontro na lista resultante: os desempates por ordem de encontro mais
// adiante dependem dessa estabilidade.
func Merge(core, dynamic []domain.Shop) []domain.Shop {
	merged := make([]domain.Shop, 0, len(core)+len(dynamic))
	position := make(map[string]int, len(core)+len(dynamic))

	for _, shop := range core {
		if at, seen := position[shop.ID]; seen {
			merged[at] = shop
			continue
		}
		position[shop.ID] = len(merged)
		merged = append(merged, shop)
	}

	for _, shop := range dynamic {
		if at, seen := position[shop.ID]; seen {
			merged[at] = shop
			continue
		}
		position[shop.ID] = len(merged)
		merged = append(merged, shop)
	}

	return merged
}

// rankAll calcula a distância de cada loja com coordenadas até o ponto de
// referência, preservando a ordem de entrada. Lojas sem coordenadas ficam
// de fora.
func rankAll(lat, lon float64, shops []domain.Shop) []domain.RankedShop {
	ranked := make([]domain.RankedShop, 0, len(shops))
	for _, shop := range shops {
		if !shop.HasCoordinates() {
			continue
		}
		ranked = append(ranked, domain.RankedShop{
			Shop:       shop,
			DistanceKm: DistanceKm(lat, lon, *shop.Latitude, *shop.Longitude),
		})
	}
	return ranked
}

// Nearest retorna as n lojas com menor distância até o ponto de referência,
// em ordem crescente. Lojas sem coordenadas são excluídas antes do
// ranqueamento. Se menos de n lojas qualificam, retorna todas. Empates de
// distância mantêm a ordem relativa de entrada (ordenação estável): nenhum
// desempate aleatório.
//
// Se nenhuma loja qualifica, o retorno é vazio: o fallback para o conjunto
// fixo de exibição é responsabilidade da camada de apresentação, não desta
// função.
func Nearest(lat, lon float64, shops []domain.Shop, n int) []domain.RankedShop {
	ranked := rankAll(lat, lon, shops)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ShakeOfTheDay escolhe a loja em destaque do dia segundo a cadeia de
// prioridade "empolgação local primeiro, depois qualidade local, depois
// qualidade global":
//
//  1. Entre as lojas a até radiusKm do usuário, vence a de maior
//     ratingDelta24h positivo.
//  2. Sem delta positivo no raio, vence a melhor avaliada dentro do raio
//     (lojas com avaliação definida têm preferência sobre as sem).
//  3. Sem nenhuma loja no raio, vence a melhor avaliada do conjunto todo.
//  4. Sem nenhuma loja com coordenadas, não há Shake of the Day (nil).
//
// Todas as reduções usam comparação estritamente maior: em caso de empate a
// primeira ocorrência na ordem de entrada vence. A lista nunca é reordenada
// antes da redução — o resultado depende da ordem de entrada e só dela.
func ShakeOfTheDay(lat, lon, radiusKm float64, shops []domain.Shop) *domain.RankedShop {
	ranked := rankAll(lat, lon, shops)
	if len(ranked) == 0 {
		return nil
	}

	withinRadius := make([]domain.RankedShop, 0, len(ranked))
	for _, shop := range ranked {
		if shop.DistanceKm <= radiusKm {
			withinRadius = append(withinRadius, shop)
		}
	}

	if len(withinRadius) > 0 {
		positiveDelta := make([]domain.RankedShop, 0, len(withinRadius))
		for _, shop := range withinRadius {
			if shop.DeltaOrZero() > 0 {
				positiveDelta = append(positiveDelta, shop)
			}
		}

		if len(positiveDelta) > 0 {
			return pickByDelta(positiveDelta)
		}
		return pickByRating(withinRadius)
	}

	return pickByRating(ranked)
}

// pickByDelta reduz para a loja de maior ratingDelta24h; empate mantém a
// primeira ocorrência
func pickByDelta(pool []domain.RankedShop) *domain.RankedShop {
	best := pool[0]
	for _, current := range pool[1:] {
		if current.DeltaOrZero() > best.DeltaOrZero() {
			best = current
		}
	}
	return &best
}

// pickByRating reduz para a loja de maior avaliação. Lojas com avaliação
// definida formam o pool preferencial; sem nenhuma, o pool é o conjunto
// inteiro e ausência vale 0 só para fins de comparação.
func pickByRating(pool []domain.RankedShop) *domain.RankedShop {
	rated := make([]domain.RankedShop, 0, len(pool))
	for _, shop := range pool {
		if shop.Rating != nil {
			rated = append(rated, shop)
		}
	}
	if len(rated) > 0 {
		pool = rated
	}

	best := pool[0]
	for _, current := range pool[1:] {
		if current.RatingOrZero() > best.RatingOrZero() {
			best = current
		}
	}
	return &best
}
