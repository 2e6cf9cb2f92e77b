/*
 *     Copyright 2020 The Dragonfly Authors
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
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/config"
	"github.com/statsml/statsml/pkg/retry"
)

const (
	// redisPingInitBackoff is the first backoff between redis pings.
	redisPingInitBackoff = 100 * time.Millisecond

	// redisPingMaxBackoff is the maximum backoff between redis pings.
	redisPingMaxBackoff = 2 * time.Second

	// redisPingMaxAttempts is the number of redis pings before giving up.
	redisPingMaxAttempts = 3
)

type redisLogger struct{}

func (l *redisLogger) Printf(ctx context.Context, format string, v ...any) {
	logger.CoreLogger.Infof(fmt.Sprintf("[redis] %s", format), v...)
}

func NewRedis(cfg *config.RedisCacheConfig) (redis.UniversalClient, error) {
	redis.SetLogger(&redisLogger{})
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Addr},
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	ctx := context.Background()
	if err := retry.Run(ctx, redisPingInitBackoff, redisPingMaxBackoff, redisPingMaxAttempts, func() (bool, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnf("ping redis %s failed: %s", cfg.Addr, err.Error())
			return false, err
		}

		return false, nil
	}); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
