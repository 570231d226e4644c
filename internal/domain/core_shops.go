package domain

// CoreShops retorna o conjunto fixo de lojas embarcadas na aplicação.
// Essas lojas estão sempre disponíveis, mesmo sem acesso à rede, e servem
// de fallback quando o diretório remoto não responde. Quando um id colide
// com um registro dinâmico, o registro dinâmico vence (ele carrega os
// agregados de avaliação ao vivo que o conjunto fixo não tem).
func CoreShops() []Shop {
	return []Shop{
		{
			ID:              "1",
			Name:            "Captain Morgan's",
			Area:            "Gisborne",
			Address:         "285 Grey Street, Gisborne",
			Latitude:        floatPtr(-38.6704),
			Longitude:       floatPtr(178.0169),
			Rating:          floatPtr(4.5),
			RatingCount:     intPtr(0),
			RatingDelta24h:  floatPtr(0),
			MilkshakePrice:  floatPtr(6.5),
			ThickshakePrice: floatPtr(9),
		},
		{
			ID:              "2",
			Name:            "Te Poi Cafe",
			Area:            "Te Poi",
			Address:         "5 Te Poi Road, Te Poi",
			Latitude:        floatPtr(-37.8724),
			Longitude:       floatPtr(175.8423),
			Rating:          floatPtr(4.5),
			RatingCount:     intPtr(0),
			RatingDelta24h:  floatPtr(0),
			MilkshakePrice:  floatPtr(6),
			ThickshakePrice: floatPtr(8),
		},
		{
			ID:              "3",
			Name:            "Hot Bread Shop Cafe",
			Area:            "Ōpōtiki",
			Address:         "43 Saint John Street, Ōpōtiki",
			Latitude:        floatPtr(-38.0118),
			Longitude:       floatPtr(177.2869),
			Rating:          floatPtr(4.0),
			RatingCount:     intPtr(0),
			RatingDelta24h:  floatPtr(0),
			MilkshakePrice:  floatPtr(5.5),
			ThickshakePrice: floatPtr(8),
		},
	}
}
