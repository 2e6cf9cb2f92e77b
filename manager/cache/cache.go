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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/statsml/statsml/manager/config"
)

const (
	// ModelRunArtifactNamespace prefix of model run artifact cache key.
	ModelRunArtifactNamespace = "model-run-artifact"
)

// Cache is cache client.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance, rdb may be nil to cache in memory only.
func New(cfg *config.Config, rdb redis.UniversalClient) *Cache {
	options := &cache.Options{
		LocalCache: cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL),
	}

	if rdb != nil {
		options.Redis = rdb
	}

	return &Cache{
		Cache: cache.New(options),
		TTL:   cfg.Cache.Redis.TTL,
	}
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("statsml:%s:%s", namespace, id)
}

// Make cache key for model run artifact.
func MakeModelRunArtifactCacheKey(id uint) string {
	return MakeCacheKey(ModelRunArtifactNamespace, fmt.Sprint(id))
}

// GetModelRunArtifact returns the artifact of a run, calling load on a miss.
// Artifacts are write-once so cached bytes never go stale.
func (c *Cache) GetModelRunArtifact(ctx context.Context, id uint, load func(context.Context) ([]byte, error)) ([]byte, error) {
	var artifact []byte
	if err := c.Once(&cache.Item{
		Ctx:   ctx,
		Key:   MakeModelRunArtifactCacheKey(id),
		Value: &artifact,
		TTL:   c.TTL,
		Do: func(*cache.Item) (any, error) {
			return load(ctx)
		},
	}); err != nil {
		return nil, err
	}

	return artifact, nil
}
