package domain

import "time"

// Rating é uma avaliação individual de uma loja, submetida por um usuário.
// Os agregados da loja (média, contagem, delta 24h) são recalculados a
// partir desses documentos.
type Rating struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	UserID    int       `json:"user_id,omitempty"`
	Value     float64   `json:"value"` // em [0,5]
	CreatedAt time.Time `json:"created_at"`
}
