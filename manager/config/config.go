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

package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"time"

	logger "github.com/statsml/statsml/internal/dflog"
)

type Config struct {
	// Verbose prints debug logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Console prints logs to stdout instead of log files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Cache configuration.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Ranking configuration.
	Ranking RankingConfig `yaml:"ranking" mapstructure:"ranking"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// ListenIP is listen ip, like: 0.0.0.0, 192.168.0.1.
	ListenIP net.IP `yaml:"listenIP" mapstructure:"listenIP"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// GracefulStopTimeout is the timeout of shutting down servers.
	GracefulStopTimeout time.Duration `yaml:"gracefulStopTimeout" mapstructure:"gracefulStopTimeout"`
}

type DatabaseConfig struct {
	// Type is the database driver, one of mysql, postgres and sqlite.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`

	// Sqlite configuration.
	Sqlite SqliteConfig `yaml:"sqlite" mapstructure:"sqlite"`
}

type MysqlConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Database name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// Custom TLS client configuration, overrides TLSConfig.
	TLS *TLSClientConfig `yaml:"tls" mapstructure:"tls"`

	// Name of a TLS config registered in the mysql driver, like true, false or skip-verify.
	TLSConfig string `yaml:"tlsConfig" mapstructure:"tlsConfig"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type TLSClientConfig struct {
	// CA is the path of the certificate authority file.
	CA string `yaml:"ca" mapstructure:"ca"`

	// Cert is the path of the client certificate file.
	Cert string `yaml:"cert" mapstructure:"cert"`

	// Key is the path of the client key file.
	Key string `yaml:"key" mapstructure:"key"`

	// InsecureSkipVerify skips the server certificate verification.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

type PostgresConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Database name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// SSL mode.
	SSLMode string `yaml:"sslMode" mapstructure:"sslMode"`

	// Timezone.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type SqliteConfig struct {
	// Path of the database file.
	Path string `yaml:"path" mapstructure:"path"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type CacheConfig struct {
	// Redis cache configuration.
	Redis RedisCacheConfig `yaml:"redis" mapstructure:"redis"`

	// Local cache configuration.
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	// Addr is the redis address, redis is not used when empty.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Password of redis.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the redis database index.
	DB int `yaml:"db" mapstructure:"db"`

	// TTL of cached artifacts.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	// Size is the number of cached artifacts.
	Size int `yaml:"size" mapstructure:"size"`

	// TTL of cached artifacts.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type TrainingConfig struct {
	// Workers is the number of runs trained concurrently.
	Workers int `yaml:"workers" mapstructure:"workers"`

	// QueueSize is the number of accepted runs waiting for a worker.
	QueueSize int `yaml:"queueSize" mapstructure:"queueSize"`
}

type RankingConfig struct {
	// Concurrency is the number of date snapshots computed in parallel.
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			ListenIP:            net.IPv4zero,
			Port:                DefaultServerPort,
			LogDir:              DefaultLogDir,
			LogMaxSize:          DefaultLogRotateMaxSize,
			LogMaxAge:           DefaultLogRotateMaxAge,
			LogMaxBackups:       DefaultLogRotateMaxBackups,
			DataDir:             DefaultDataDir,
			GracefulStopTimeout: DefaultGracefulStopTimeout,
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeSqlite,
			Mysql: MysqlConfig{
				Port:    3306,
				Migrate: true,
			},
			Postgres: PostgresConfig{
				Port:     5432,
				SSLMode:  "disable",
				Timezone: "UTC",
				Migrate:  true,
			},
			Sqlite: SqliteConfig{
				Path:    filepath.Join(DefaultDataDir, DefaultSqliteFileName),
				Migrate: true,
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				TTL: DefaultRedisCacheTTL,
			},
			Local: LocalCacheConfig{
				Size: DefaultLocalCacheSize,
				TTL:  DefaultLocalCacheTTL,
			},
		},
		Training: TrainingConfig{
			Workers:   DefaultTrainingWorkers,
			QueueSize: DefaultTrainingQueueSize,
		},
		Ranking: RankingConfig{
			Concurrency: DefaultRankingConcurrency,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.ListenIP == nil {
		return errors.New("server requires parameter listenIP")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if !cfg.Console && cfg.Server.LogDir == "" {
		return errors.New("server requires parameter logDir")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql:
		if cfg.Database.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}

		if tls := cfg.Database.Mysql.TLS; tls != nil {
			if tls.CA == "" {
				return errors.New("mysql tls requires parameter ca")
			}

			if (tls.Cert == "") != (tls.Key == "") {
				return errors.New("mysql tls requires both parameter cert and key")
			}
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	case DatabaseTypeSqlite:
		if cfg.Database.Sqlite.Path == "" {
			return errors.New("sqlite requires parameter path")
		}
	default:
		return fmt.Errorf("database type %q is not one of mysql, postgres and sqlite", cfg.Database.Type)
	}

	if cfg.Cache.Local.Size <= 0 {
		return errors.New("local cache requires parameter size")
	}

	if cfg.Cache.Local.TTL <= 0 {
		return errors.New("local cache requires parameter ttl")
	}

	if cfg.Cache.Redis.Addr != "" && cfg.Cache.Redis.TTL <= 0 {
		return errors.New("redis cache requires parameter ttl")
	}

	if cfg.Training.Workers <= 0 {
		return errors.New("training requires parameter workers")
	}

	if cfg.Training.QueueSize <= 0 {
		return errors.New("training requires parameter queueSize")
	}

	if cfg.Ranking.Concurrency <= 0 {
		return errors.New("ranking requires parameter concurrency")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Server.ListenIP == nil {
		cfg.Server.ListenIP = net.IPv4zero
	}

	if cfg.Database.Type == DatabaseTypeSqlite && cfg.Database.Sqlite.Path == "" && cfg.Server.DataDir != "" {
		cfg.Database.Sqlite.Path = filepath.Join(cfg.Server.DataDir, DefaultSqliteFileName)
	}

	return nil
}

// RESTAddr is the listen address of the rest server.
func (cfg *Config) RESTAddr() string {
	return net.JoinHostPort(cfg.Server.ListenIP.String(), fmt.Sprint(cfg.Server.Port))
}

// LogRotateConfig is the log rotation settings of the server.
func (cfg *Config) LogRotateConfig() logger.LogRotateConfig {
	return logger.LogRotateConfig{
		MaxSize:    cfg.Server.LogMaxSize,
		MaxAge:     cfg.Server.LogMaxAge,
		MaxBackups: cfg.Server.LogMaxBackups,
	}
}
