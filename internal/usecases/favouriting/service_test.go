package favouriting

import (
	"context"
	"testing"

	"github.com/shakemap/shakemap-api/infrastructure/prefstore/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_List(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *mocks.MockStore) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockStore := mocks.NewMockStore(ctrl)
		return &Service{store: mockStore}, mockStore
	}

	t.Run("Dono sem favoritos retorna lista vazia", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return("", false, nil)

		favourites, err := service.List(ctx, "user:1")
		assert.NoError(t, err)
		assert.Empty(t, favourites)
	})

	t.Run("Valor corrompido é tratado como lista vazia", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return("{nope", true, nil)

		favourites, err := service.List(ctx, "user:1")
		assert.NoError(t, err)
		assert.Empty(t, favourites)
	})

	t.Run("Lista gravada é decodificada", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:device:abc").
			Return(`["1","3"]`, true, nil)

		favourites, err := service.List(ctx, "device:abc")
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "3"}, favourites)
	})
}

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *mocks.MockStore) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockStore := mocks.NewMockStore(ctrl)
		return &Service{store: mockStore}, mockStore
	}

	t.Run("Adiciona loja ausente com uma única escrita", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return(`["1"]`, true, nil)

		mockStore.EXPECT().
			Set(gomock.Any(), "favourites:user:1", `["1","2"]`).
			Return(nil).
			Times(1)

		favourites, err := service.Toggle(ctx, "user:1", "2")
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, favourites)
	})

	t.Run("Remove loja presente", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return(`["1","2"]`, true, nil)

		mockStore.EXPECT().
			Set(gomock.Any(), "favourites:user:1", `["1"]`).
			Return(nil)

		favourites, err := service.Toggle(ctx, "user:1", "2")
		assert.NoError(t, err)
		assert.Equal(t, []string{"1"}, favourites)
	})

	t.Run("Duas chamadas seguidas restauram o estado original", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return(`[]`, true, nil)
		mockStore.EXPECT().
			Set(gomock.Any(), "favourites:user:1", `["2"]`).
			Return(nil)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return(`["2"]`, true, nil)
		mockStore.EXPECT().
			Set(gomock.Any(), "favourites:user:1", `[]`).
			Return(nil)

		favourites, err := service.Toggle(ctx, "user:1", "2")
		assert.NoError(t, err)
		assert.Equal(t, []string{"2"}, favourites)

		favourites, err = service.Toggle(ctx, "user:1", "2")
		assert.NoError(t, err)
		assert.Empty(t, favourites)
	})

	t.Run("Falha na escrita retorna a lista alterada junto com o erro", func(t *testing.T) {
		service, mockStore := newService(t)

		mockStore.EXPECT().
			Get(gomock.Any(), "favourites:user:1").
			Return(`[]`, true, nil)

		mockStore.EXPECT().
			Set(gomock.Any(), "favourites:user:1", `["2"]`).
			Return(assert.AnError)

		favourites, err := service.Toggle(ctx, "user:1", "2")
		assert.Error(t, err)
		assert.Equal(t, []string{"2"}, favourites)
	})
}

func TestService_Walkthrough(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	service := &Service{store: mockStore}

	t.Run("Flag ausente significa não visto", func(t *testing.T) {
		mockStore.EXPECT().
			Get(gomock.Any(), "walkthrough:device:abc").
			Return("", false, nil)

		seen, err := service.HasSeenWalkthrough(ctx, "device:abc")
		assert.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("Marcar e consultar", func(t *testing.T) {
		mockStore.EXPECT().
			Set(gomock.Any(), "walkthrough:device:abc", "true").
			Return(nil)

		assert.NoError(t, service.MarkWalkthroughSeen(ctx, "device:abc"))

		mockStore.EXPECT().
			Get(gomock.Any(), "walkthrough:device:abc").
			Return("true", true, nil)

		seen, err := service.HasSeenWalkthrough(ctx, "device:abc")
		assert.NoError(t, err)
		assert.True(t, seen)
	})
}
