package shopkeeping

import (
	"errors"
	"fmt"
)

var (
	ErrShopNotFound    = errors.New("loja não encontrada")
	ErrMissingShopName = errors.New("nome da loja é obrigatório")
	ErrInvalidRating   = errors.New("avaliação deve estar entre 0 e 5")
)

// ShopAlreadyExistsError indica que o estabelecimento já foi cadastrado,
// apontando para o registro existente
type ShopAlreadyExistsError struct {
	ExistingID string
}

func (e *ShopAlreadyExistsError) Error() string {
	return fmt.Sprintf("loja já cadastrada com id %s", e.ExistingID)
}

// IsShopAlreadyExists verifica se o erro indica cadastro duplicado
func IsShopAlreadyExists(err error) (*ShopAlreadyExistsError, bool) {
	var target *ShopAlreadyExistsError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
