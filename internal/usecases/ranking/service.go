package ranking

import (
	"context"

	"github.com/shakemap/shakemap-api/infrastructure/repository"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// RankingService expõe o núcleo puro de ranqueamento sobre o diretório de
// lojas. Nenhum erro de colaborador escapa daqui: falha ao consultar o
// diretório degrada para o conjunto fixo embarcado e o cálculo segue.
type RankingService interface {
	NearestShops(ctx context.Context, lat, lon float64) []domain.RankedShop
	ShakeOfTheDay(ctx context.Context, lat, lon float64) *domain.RankedShop
}

type Service struct {
	shopRepo     repository.ShopRepository
	radiusKm     float64
	nearestCount int
}

func NewService(shopRepo repository.ShopRepository, cfg *config.Config) RankingService {
	radius := cfg.Ranking.ShakeRadiusKm
	if radius <= 0 {
		radius = DefaultShakeRadiusKm
	}

	count := cfg.Ranking.NearestCount
	if count <= 0 {
		count = DefaultNearestCount
	}

	return &Service{
		shopRepo:     shopRepo,
		radiusKm:     radius,
		nearestCount: count,
	}
}

// NearestShops retorna as lojas mais próximas do ponto informado, em ordem
// crescente de distância
func (s *Service) NearestShops(ctx context.Context, lat, lon float64) []domain.RankedShop {
	return Nearest(lat, lon, s.mergedShops(ctx), s.nearestCount)
}

// ShakeOfTheDay retorna a loja em destaque do dia, ou nil quando nenhuma
// loja com coordenadas existe
func (s *Service) ShakeOfTheDay(ctx context.Context, lat, lon float64) *domain.RankedShop {
	return ShakeOfTheDay(lat, lon, s.radiusKm, s.mergedShops(ctx))
}

// mergedShops combina o conjunto fixo com o diretório remoto. Falha na
// consulta equivale a "zero lojas dinâmicas disponíveis": o ranking nunca
// propaga erro de colaborador.
func (s *Service) mergedShops(ctx context.Context) []domain.Shop {
	dynamic, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao consultar o diretório de lojas, usando apenas o conjunto fixo")
		dynamic = nil
	}

	return Merge(domain.CoreShops(), dynamic)
}
