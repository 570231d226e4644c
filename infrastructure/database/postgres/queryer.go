package postgres

import "database/sql"

// Queryer abstrai *sql.DB e *sql.Tx para os repositórios
type Queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}
