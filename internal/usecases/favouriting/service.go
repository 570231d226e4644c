package favouriting

import (
	"context"
	"encoding/json"

	"github.com/shakemap/shakemap-api/infrastructure/prefstore"
	"github.com/sirupsen/logrus"
)

const (
	favouritesKeyPrefix  = "favourites:"
	walkthroughKeyPrefix = "walkthrough:"
)

// Favouriter mantém a lista de lojas favoritas e a flag de walkthrough de
// cada dono (usuário autenticado ou dispositivo anônimo).
//
// A lista é gravada por inteiro a cada alteração: a última escrita vence.
type Favouriter interface {
	List(ctx context.Context, owner string) ([]string, error)
	Toggle(ctx context.Context, owner, shopID string) ([]string, error)
	HasSeenWalkthrough(ctx context.Context, owner string) (bool, error)
	MarkWalkthroughSeen(ctx context.Context, owner string) error
}

type Service struct {
	store prefstore.Store
}

func NewService(store prefstore.Store) Favouriter {
	return &Service{store: store}
}

// List retorna os ids das lojas favoritas do dono. Valor ausente ou
// corrompido é tratado como lista vazia.
func (s *Service) List(ctx context.Context, owner string) ([]string, error) {
	raw, found, err := s.store.Get(ctx, favouritesKeyPrefix+owner)
	if err != nil {
		return nil, err
	}

	if !found {
		return []string{}, nil
	}

	var favourites []string
	if err := json.Unmarshal([]byte(raw), &favourites); err != nil {
		logrus.WithError(err).WithField("owner", owner).
			Warn("Lista de favoritos corrompida, reiniciando como vazia")
		return []string{}, nil
	}

	return favourites, nil
}

// Toggle adiciona ou remove a loja da lista de favoritos e grava a lista
// resultante em uma única escrita. Em caso de falha na escrita a lista já
// alterada é retornada junto com o erro, para o chamador decidir como
// apresentar o estado não persistido.
func (s *Service) Toggle(ctx context.Context, owner, shopID string) ([]string, error) {
	favourites, err := s.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(favourites)+1)
	removed := false
	for _, id := range favourites {
		if id == shopID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}

	if !removed {
		updated = append(updated, shopID)
	}

	encoded, err := json.Marshal(updated)
	if err != nil {
		return updated, err
	}

	if err := s.store.Set(ctx, favouritesKeyPrefix+owner, string(encoded)); err != nil {
		return updated, err
	}

	return updated, nil
}

func (s *Service) HasSeenWalkthrough(ctx context.Context, owner string) (bool, error) {
	raw, found, err := s.store.Get(ctx, walkthroughKeyPrefix+owner)
	if err != nil {
		return false, err
	}

	return found && raw == "true", nil
}

func (s *Service) MarkWalkthroughSeen(ctx context.Context, owner string) error {
	return s.store.Set(ctx, walkthroughKeyPrefix+owner, "true")
}
