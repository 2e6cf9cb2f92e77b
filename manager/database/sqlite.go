/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/statsml/statsml/manager/config"
)

// defaultSqliteBusyTimeout is the milliseconds a writer waits on a locked database.
const defaultSqliteBusyTimeout = 5000

func newSqlite(cfg *config.Config) (*gorm.DB, error) {
	sqliteCfg := &cfg.Database.Sqlite
	if err := os.MkdirAll(filepath.Dir(sqliteCfg.Path), 0700); err != nil {
		return nil, err
	}

	return OpenSqlite(sqliteCfg.Path, sqliteCfg.Migrate, cfg.Verbose)
}

// OpenSqlite opens the sqlite database file at path.
func OpenSqlite(path string, migrate bool, verbose bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(formatSqliteDSN(path)), gormConfig(verbose))
	if err != nil {
		return nil, err
	}

	// Sqlite allows a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Run migration.
	if migrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func formatSqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", path, defaultSqliteBusyTimeout)
}
