package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"
)

const schemaLockKey = int64(17254093)

//go:embed sql/schema/*.sql
var schemaFS embed.FS

// CreateSchema создаёт шесть таблиц и два представления с ограничениями.
// Против уже инициализированной базы возвращает ошибку, а не глотает её:
// DDL выполняется без IF NOT EXISTS.
func (s *Store) CreateSchema(ctx context.Context) error {
	return s.execSchemaScript(ctx, "create", "sql/schema/create.sql")
}

// DropSchema удаляет представления, затем таблицы в порядке зависимостей.
func (s *Store) DropSchema(ctx context.Context) error {
	return s.execSchemaScript(ctx, "drop", "sql/schema/drop.sql")
}

// ClearSchema удаляет все строки, не трогая структуру: сперва ассоциации,
// позиции и лайки, затем родительские таблицы.
func (s *Store) ClearSchema(ctx context.Context) error {
	return s.execSchemaScript(ctx, "clear", "sql/schema/clear.sql")
}

// SchemaStatus возвращает число существующих таблиц схемы из шести ожидаемых.
func (s *Store) SchemaStatus(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("postgres store is not initialized")
	}

	queryCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var present int
	if err := s.db.QueryRowContext(queryCtx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name IN ('customers', 'orders', 'dishes', 'customer_orders', 'order_lines', 'likes')
	`).Scan(&present); err != nil {
		return 0, fmt.Errorf("query schema status: %w", err)
	}

	return present, nil
}

// execSchemaScript выполняет встроенный SQL-скрипт в одной транзакции
// под advisory-lock, чтобы параллельные вызовы не пересекались.
func (s *Store) execSchemaScript(ctx context.Context, name, path string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("postgres store is not initialized")
	}

	body, err := schemaFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema script %s: %w", name, err)
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := conn.ExecContext(lockCtx, "SELECT pg_advisory_lock($1)", schemaLockKey); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", schemaLockKey)
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx (%s): %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("execute schema script %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema script %s: %w", name, err)
	}

	s.logger.WithField("script", name).Info("schema script applied")
	return nil
}
