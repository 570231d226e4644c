package reviewing

import (
	"context"
	"testing"

	"github.com/shakemap/shakemap-api/infrastructure/repository/mocks"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_AddRating(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *mocks.MockRatingRepository, *mocks.MockShopRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockRatingRepo := mocks.NewMockRatingRepository(ctrl)
		mockShopRepo := mocks.NewMockShopRepository(ctrl)
		return &Service{ratingRepo: mockRatingRepo, shopRepo: mockShopRepo}, mockRatingRepo, mockShopRepo
	}

	t.Run("Registra avaliação e atualiza agregados", func(t *testing.T) {
		service, mockRatingRepo, mockShopRepo := newService(t)

		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "abc123").
			Return(&domain.Shop{ID: "abc123"}, nil)

		mockRatingRepo.EXPECT().
			AddRating(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rating *domain.Rating) error {
				assert.Equal(t, "abc123", rating.ShopID)
				assert.Equal(t, 4.5, rating.Value)
				assert.NotEmpty(t, rating.ID)
				return nil
			})

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", gomock.Any()).
			Return(4.25, 2, nil)

		mockShopRepo.EXPECT().
			UpdateRatingAggregates(gomock.Any(), "abc123", 4.25, 2).
			Return(nil)

		rating, err := service.AddRating(ctx, "abc123", 7, 4.5)
		assert.NoError(t, err)
		assert.Equal(t, 7, rating.UserID)
	})

	t.Run("Valor fora do intervalo é recusado", func(t *testing.T) {
		service, _, _ := newService(t)

		rating, err := service.AddRating(ctx, "abc123", 7, 5.5)
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Nil(t, rating)
	})

	t.Run("Loja inexistente é recusada", func(t *testing.T) {
		service, _, mockShopRepo := newService(t)

		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "nope").
			Return(nil, nil)

		rating, err := service.AddRating(ctx, "nope", 7, 4.0)
		assert.ErrorIs(t, err, ErrShopNotFound)
		assert.Nil(t, rating)
	})

	t.Run("Falha ao recalcular agregados não invalida a avaliação", func(t *testing.T) {
		service, mockRatingRepo, mockShopRepo := newService(t)

		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "abc123").
			Return(&domain.Shop{ID: "abc123"}, nil)

		mockRatingRepo.EXPECT().
			AddRating(gomock.Any(), gomock.Any()).
			Return(nil)

		mockRatingRepo.EXPECT().
			AverageForShop(gomock.Any(), "abc123", gomock.Any()).
			Return(0.0, 0, assert.AnError)

		rating, err := service.AddRating(ctx, "abc123", 7, 4.0)
		assert.NoError(t, err)
		assert.NotNil(t, rating)
	})
}
