// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dkhalenko/go-pass-mirror/internal/config"
	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/migrations"
)

// DB wraps the mirror's sql.DB connection. The mirror is a single
// local SQLite file; foreign keys are enabled because the folder tree
// relies on the parent reference constraint.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.MirrorPath)

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during mirror database connection")
		return nil, fmt.Errorf("error occured during mirror database connection: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent page pipelines.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting mirror database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error migrating mirror database")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.MirrorPath).Msg("connected to mirror database successfully")

	return &DB{DB: conn, logger: log}, nil
}
