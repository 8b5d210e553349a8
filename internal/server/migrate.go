package server

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL
		              CHECK(status IN ('FAZER','AJUSTES','APROVACAO','APROVADO','PRODUCAO','ENVIADO')),
		priority      TEXT NOT NULL DEFAULT 'normal',
		customer_json TEXT NOT NULL DEFAULT '{}',
		products_json TEXT NOT NULL DEFAULT '[]',
		labels_json   TEXT NOT NULL DEFAULT '[]',
		due_date      TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS order_history (
		id       TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		date     TEXT NOT NULL,
		status   TEXT NOT NULL,
		actor    TEXT NOT NULL DEFAULT '',
		comment  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS order_comments (
		id       TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		date     TEXT NOT NULL,
		actor    TEXT NOT NULL DEFAULT '',
		text     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_order_history_order ON order_history(order_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_order_comments_order ON order_comments(order_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
