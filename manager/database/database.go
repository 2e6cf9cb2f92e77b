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

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"moul.io/zapgorm2"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/config"
	"github.com/statsml/statsml/manager/models"
)

type Database struct {
	DB  *gorm.DB
	RDB redis.UniversalClient
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql:
		db, err = newMyqsl(cfg)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
	case config.DatabaseTypeSqlite:
		db, err = newSqlite(cfg)
	default:
		return nil, fmt.Errorf("invalid database type %s", cfg.Database.Type)
	}
	if err != nil {
		logger.Errorf("%s: %s", cfg.Database.Type, err.Error())
		return nil, err
	}

	var rdb redis.UniversalClient
	if cfg.Cache.Redis.Addr != "" {
		rdb, err = NewRedis(&cfg.Cache.Redis)
		if err != nil {
			logger.Errorf("redis: %s", err.Error())
			return nil, err
		}
	}

	return &Database{
		DB:  db,
		RDB: rdb,
	}, nil
}

// gormConfig is shared by all dialectors.
func gormConfig(verbose bool) *gorm.Config {
	logLevel := gormlogger.Info
	if !verbose {
		logLevel = gormlogger.Warn
	}

	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   zapgorm2.New(logger.CoreLogger.Desugar()).LogMode(logLevel),
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Model{},
		&models.ModelRun{},
		&models.ModelRunMetric{},
		&models.Season{},
		&models.Team{},
		&models.Game{},
	)
}
