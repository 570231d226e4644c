package ranking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shakemap/shakemap-api/infrastructure/repository/mocks"
	"github.com/shakemap/shakemap-api/internal/config"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewService_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)

	t.Run("Valores zerados na configuração caem no padrão", func(t *testing.T) {
		service := NewService(mockShopRepo, &config.Config{}).(*Service)

		assert.Equal(t, DefaultShakeRadiusKm, service.radiusKm)
		assert.Equal(t, DefaultNearestCount, service.nearestCount)
	})

	t.Run("Valores da configuração prevalecem quando válidos", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Ranking.ShakeRadiusKm = 25
		cfg.Ranking.NearestCount = 5

		service := NewService(mockShopRepo, cfg).(*Service)

		assert.Equal(t, 25.0, service.radiusKm)
		assert.Equal(t, 5, service.nearestCount)
	})
}

func TestService_NearestShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	service := NewService(mockShopRepo, &config.Config{})

	ctx := context.Background()

	// Ponto de referência em Gisborne, vizinho da loja fixa "1"
	userLat, userLon := -38.6700, 178.0165

	t.Run("Loja cadastrada próxima entra no ranking junto das fixas", func(t *testing.T) {
		lat, lon := -38.6710, 178.0180
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return([]domain.Shop{
				{ID: "abc123", Name: "Loja Nova", Latitude: &lat, Longitude: &lon},
			}, nil)

		nearest := service.NearestShops(ctx, userLat, userLon)

		require.Len(t, nearest, 3)
		assert.Equal(t, "1", nearest[0].ID)
		assert.Equal(t, "abc123", nearest[1].ID)
	})

	t.Run("Falha no diretório degrada para o conjunto fixo", func(t *testing.T) {
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return(nil, errors.New("connection reset"))

		nearest := service.NearestShops(ctx, userLat, userLon)

		require.Len(t, nearest, 3)
		assert.Equal(t, "1", nearest[0].ID)
	})
}

func TestService_ShakeOfTheDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	service := NewService(mockShopRepo, &config.Config{})

	ctx := context.Background()
	userLat, userLon := -38.6700, 178.0165

	t.Run("Delta positivo de loja cadastrada vence no raio", func(t *testing.T) {
		lat, lon := -38.6710, 178.0180
		rating := 4.2
		delta := 0.4
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return([]domain.Shop{
				{
					ID:             "abc123",
					Name:           "Loja Nova",
					Latitude:       &lat,
					Longitude:      &lon,
					Rating:         &rating,
					RatingDelta24h: &delta,
				},
			}, nil)

		pick := service.ShakeOfTheDay(ctx, userLat, userLon)

		require.NotNil(t, pick)
		assert.Equal(t, "abc123", pick.ID)
	})

	t.Run("Falha no diretório ainda escolhe entre as fixas", func(t *testing.T) {
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return(nil, errors.New("connection reset"))

		pick := service.ShakeOfTheDay(ctx, userLat, userLon)

		// As lojas fixas têm delta 0: vence a melhor avaliada no raio
		require.NotNil(t, pick)
		assert.Equal(t, "1", pick.ID)
	})
}
