package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shakemap/shakemap-api/infrastructure/repository/mocks"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestComputeRatingDelta(t *testing.T) {
	tests := []struct {
		name           string
		currentAverage float64
		pastAverage    float64
		pastCount      int
		expected       float64
	}{
		{
			name:           "Média subiu em relação a 24h atrás",
			currentAverage: 4.5,
			pastAverage:    4.2,
			pastCount:      10,
			expected:       0.3,
		},
		{
			name:           "Média caiu em relação a 24h atrás",
			currentAverage: 3.8,
			pastAverage:    4.0,
			pastCount:      5,
			expected:       -0.2,
		},
		{
			name:           "Sem avaliações há 24h usa linha de base zero",
			currentAverage: 4.0,
			pastAverage:    0,
			pastCount:      0,
			expected:       4.0,
		},
		{
			name:           "Média estável resulta em delta zero",
			currentAverage: 4.5,
			pastAverage:    4.5,
			pastCount:      3,
			expected:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeRatingDelta(tt.currentAverage, tt.pastAverage, tt.pastCount)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestRatingDeltaSyncService_processShopRatingDelta(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*RatingDeltaSyncService, *mocks.MockShopRepository, *mocks.MockRatingRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockShopRepo := mocks.NewMockShopRepository(ctrl)
		mockRatingRepo := mocks.NewMockRatingRepository(ctrl)
		service := &RatingDeltaSyncService{
			shopRepo:   mockShopRepo,
			ratingRepo: mockRatingRepo,
		}
		return service, mockShopRepo, mockRatingRepo
	}

	t.Run("Atualiza delta e agregados da loja", func(t *testing.T) {
		service, mockShopRepo, mockRatingRepo := newService(t)

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", time.Time{}).
			Return(4.5, 4, nil)

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", gomock.Any()).
			Return(4.2, 3, nil)

		mockShopRepo.EXPECT().
			UpdateRatingDelta(gomock.Any(), "abc123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, delta float64) error {
				assert.InDelta(t, 0.3, delta, 1e-9)
				return nil
			})

		mockShopRepo.EXPECT().
			UpdateRatingAggregates(gomock.Any(), "abc123", 4.5, 4).
			Return(nil)

		updated := service.processShopRatingDelta(ctx, domain.Shop{ID: "abc123"})
		assert.True(t, updated)
	})

	t.Run("Loja sem avaliações é ignorada", func(t *testing.T) {
		service, _, mockRatingRepo := newService(t)

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", time.Time{}).
			Return(0.0, 0, nil)

		updated := service.processShopRatingDelta(ctx, domain.Shop{ID: "abc123"})
		assert.False(t, updated)
	})

	t.Run("Erro ao consultar avaliações não interrompe as demais lojas", func(t *testing.T) {
		service, _, mockRatingRepo := newService(t)

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", time.Time{}).
			Return(0.0, 0, assert.AnError)

		updated := service.processShopRatingDelta(ctx, domain.Shop{ID: "abc123"})
		assert.False(t, updated)
	})
}

func TestRatingDeltaSyncService_syncAllRatingDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	mockRatingRepo := mocks.NewMockRatingRepository(ctrl)
	service := &RatingDeltaSyncService{
		shopRepo:   mockShopRepo,
		ratingRepo: mockRatingRepo,
	}

	mockShopRepo.EXPECT().
		ListShops(gomock.Any()).
		Return([]domain.Shop{{ID: "1"}, {ID: "2"}}, nil)

	// Loja "1" tem avaliações, loja "2" não
	mockRatingRepo.EXPECT().
		AverageForShop(gomock.Any(), "1", time.Time{}).
		Return(4.0, 2, nil)
	mockRatingRepo.EXPECT().
		AverageForShop(gomock.Any(), "1", gomock.Any()).
		Return(0.0, 0, nil)
	mockShopRepo.EXPECT().
		UpdateRatingDelta(gomock.Any(), "1", 4.0).
		Return(nil)
	mockShopRepo.EXPECT().
		UpdateRatingAggregates(gomock.Any(), "1", 4.0, 2).
		Return(nil)

	mockRatingRepo.EXPECT().
		AverageForShop(gomock.Any(), "2", time.Time{}).
		Return(0.0, 0, nil)

	service.syncAllRatingDeltas(context.Background())

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}
