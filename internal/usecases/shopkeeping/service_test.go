package shopkeeping

import (
	"context"
	"testing"

	placesdomain "github.com/shakemap/shakemap-api/infrastructure/integrator/places/domain"
	placesmocks "github.com/shakemap/shakemap-api/infrastructure/integrator/places/mocks"
	"github.com/shakemap/shakemap-api/infrastructure/repository/mocks"
	"github.com/shakemap/shakemap-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_ListShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	service := &Service{shopRepo: mockShopRepo}

	ctx := context.Background()

	t.Run("Mescla conjunto fixo com lojas cadastradas", func(t *testing.T) {
		rating := 4.8
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return([]domain.Shop{
				{ID: "abc123", Name: "Loja Nova"},
				{ID: "1", Name: "Captain Morgan's", Rating: &rating},
			}, nil)

		shops, err := service.ListShops(ctx)
		assert.NoError(t, err)

		// 3 lojas fixas + 1 nova, com a versão cadastrada da loja "1"
		// prevalecendo na posição original
		assert.Len(t, shops, 4)
		assert.Equal(t, "1", shops[0].ID)
		assert.Equal(t, 4.8, *shops[0].Rating)
		assert.Equal(t, "abc123", shops[3].ID)
	})

	t.Run("Propaga erro do repositório", func(t *testing.T) {
		mockShopRepo.EXPECT().
			ListShops(gomock.Any()).
			Return(nil, assert.AnError)

		shops, err := service.ListShops(ctx)
		assert.Error(t, err)
		assert.Nil(t, shops)
	})
}

func TestService_GetShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	service := &Service{shopRepo: mockShopRepo}

	ctx := context.Background()

	t.Run("Busca no banco primeiro", func(t *testing.T) {
		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "abc123").
			Return(&domain.Shop{ID: "abc123", Name: "Loja Nova"}, nil)

		shop, err := service.GetShop(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, "Loja Nova", shop.Name)
	})

	t.Run("Recorre ao conjunto fixo quando ausente no banco", func(t *testing.T) {
		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "2").
			Return(nil, nil)

		shop, err := service.GetShop(ctx, "2")
		assert.NoError(t, err)
		assert.Equal(t, "Te Poi Cafe", shop.Name)
	})

	t.Run("Loja inexistente retorna erro", func(t *testing.T) {
		mockShopRepo.EXPECT().
			GetShopByID(gomock.Any(), "nope").
			Return(nil, nil)

		shop, err := service.GetShop(ctx, "nope")
		assert.ErrorIs(t, err, ErrShopNotFound)
		assert.Nil(t, shop)
	})
}

func TestService_AddShop(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *mocks.MockShopRepository, *placesmocks.MockPlacesIntegrator) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockShopRepo := mocks.NewMockShopRepository(ctrl)
		mockPlaces := placesmocks.NewMockPlacesIntegrator(ctrl)
		return &Service{shopRepo: mockShopRepo, placesService: mockPlaces}, mockShopRepo, mockPlaces
	}

	t.Run("Cadastro simples sem Places", func(t *testing.T) {
		service, mockShopRepo, _ := newService(t)

		mockShopRepo.EXPECT().
			CreateShop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
				assert.NotEmpty(t, shop.ID)
				assert.NotNil(t, shop.CreatedAt)
				return shop, nil
			})

		shop, err := service.AddShop(ctx, NewShop{Name: "Milky Way"})
		assert.NoError(t, err)
		assert.Equal(t, "Milky Way", shop.Name)
	})

	t.Run("Nome obrigatório", func(t *testing.T) {
		service, _, _ := newService(t)

		shop, err := service.AddShop(ctx, NewShop{})
		assert.ErrorIs(t, err, ErrMissingShopName)
		assert.Nil(t, shop)
	})

	t.Run("Avaliação fora do intervalo é recusada", func(t *testing.T) {
		service, _, _ := newService(t)

		rating := 7.0
		shop, err := service.AddShop(ctx, NewShop{Name: "Milky Way", Rating: &rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Nil(t, shop)
	})

	t.Run("Estabelecimento duplicado é recusado com id existente", func(t *testing.T) {
		service, mockShopRepo, _ := newService(t)

		mockShopRepo.EXPECT().
			GetShopByPlaceID(gomock.Any(), "place-1").
			Return(&domain.Shop{ID: "abc123"}, nil)

		shop, err := service.AddShop(ctx, NewShop{Name: "Milky Way", GooglePlaceID: "place-1"})
		assert.Nil(t, shop)

		existsErr, ok := IsShopAlreadyExists(err)
		assert.True(t, ok)
		assert.Equal(t, "abc123", existsErr.ExistingID)
	})

	t.Run("Detalhes do Places preenchem dados ausentes", func(t *testing.T) {
		service, mockShopRepo, mockPlaces := newService(t)

		mockShopRepo.EXPECT().
			GetShopByPlaceID(gomock.Any(), "place-2").
			Return(nil, nil)

		mockPlaces.EXPECT().
			GetShopDetails("place-2").
			Return(&placesdomain.Place{
				PlaceID:   "place-2",
				Name:      "Shake Corner",
				Address:   "1 Main St",
				Latitude:  -38.7,
				Longitude: 178.0,
			}, nil)

		mockShopRepo.EXPECT().
			CreateShop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
				return shop, nil
			})

		shop, err := service.AddShop(ctx, NewShop{GooglePlaceID: "place-2"})
		assert.NoError(t, err)
		assert.Equal(t, "Shake Corner", shop.Name)
		assert.Equal(t, "1 Main St", shop.Address)
		assert.Equal(t, -38.7, *shop.Latitude)
		assert.Equal(t, 178.0, *shop.Longitude)
	})

	t.Run("Falha no Places não impede o cadastro com dados informados", func(t *testing.T) {
		service, mockShopRepo, mockPlaces := newService(t)

		mockShopRepo.EXPECT().
			GetShopByPlaceID(gomock.Any(), "place-3").
			Return(nil, nil)

		mockPlaces.EXPECT().
			GetShopDetails("place-3").
			Return(nil, assert.AnError)

		mockShopRepo.EXPECT().
			CreateShop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
				return shop, nil
			})

		shop, err := service.AddShop(ctx, NewShop{Name: "Milky Way", GooglePlaceID: "place-3"})
		assert.NoError(t, err)
		assert.Equal(t, "Milky Way", shop.Name)
	})
}

func TestService_SeedCoreShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	service := &Service{shopRepo: mockShopRepo}

	mockShopRepo.EXPECT().
		UpsertShop(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(domain.CoreShops()))

	assert.NoError(t, service.SeedCoreShops(context.Background()))
}
