package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/imobsites/crm-board/internal/entity"
)

// orderKey é a chave histórica usada pelo painel web no localStorage;
// mantida igual para o valor serializado ser intercambiável.
const orderKey = "kanbanColumnOrder"

// Store é o cache local da ordenação do kanban, um KV de linha única
// sobre SQLite. Lido uma vez na montagem do quadro e gravado a cada
// mutação da ordenação.
type Store struct {
	db *sql.DB
}

func New(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir cache sqlite: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS board_cache (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("falha ao migrar cache sqlite: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load devolve (nil, nil) quando nunca houve gravação.
func (s *Store) Load(ctx context.Context) (entity.ColumnOrder, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM board_cache WHERE key = ?`, orderKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler ordenação do cache: %w", err)
	}

	var order entity.ColumnOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		// Valor corrompido vale como inexistente; a reconciliação
		// reconstrói a ordenação a partir dos leads.
		return nil, fmt.Errorf("ordenação em cache ilegível: %w", err)
	}

	return order, nil
}

func (s *Store) Save(ctx context.Context, order entity.ColumnOrder) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("falha ao serializar ordenação: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO board_cache (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		orderKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("falha ao gravar ordenação no cache: %w", err)
	}

	return nil
}
