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

package manager

import (
	"context"
	"errors"
	"net/http"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager/cache"
	"github.com/statsml/statsml/manager/config"
	"github.com/statsml/statsml/manager/database"
	"github.com/statsml/statsml/manager/metrics"
	"github.com/statsml/statsml/manager/prediction"
	"github.com/statsml/statsml/manager/registry"
	"github.com/statsml/statsml/manager/router"
	"github.com/statsml/statsml/manager/service"
	"github.com/statsml/statsml/manager/store"
	"github.com/statsml/statsml/pkg/ranking"
	"github.com/statsml/statsml/pkg/types"
	"github.com/statsml/statsml/trainer/training"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// Database clients.
	database *database.Database

	// Training orchestrator.
	training training.Training

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize database.
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	s.database = db

	st := store.New(db.DB)

	// Initialize registry, a model that fails to load is left out
	// of the catalog instead of stopping the server.
	r := registry.New(st)
	if err := r.Scan(); err != nil {
		logger.Warnf("scan models: %s", err.Error())
	}

	if err := r.Sync(context.Background()); err != nil {
		return nil, err
	}
	metrics.ModelCount.Set(float64(len(r.List())))
	logger.Infof("registered models: %v", r.List())

	// Runs left in RUNNING by a previous process are never resumed.
	stuck, err := st.ListModelRunsByStatus(context.Background(), types.ModelRunStateRunning)
	if err != nil {
		return nil, err
	}
	for _, run := range stuck {
		logger.WithModelRun(run.ID, run.Model.Name).Warnf("model run is stuck in %s state since %s", run.Status, run.UpdatedAt)
	}

	// Initialize training.
	s.training = training.New(st, r,
		training.WithWorkers(cfg.Training.Workers),
		training.WithQueueSize(cfg.Training.QueueSize),
	)

	// Initialize REST server.
	svc := service.New(
		st,
		r,
		s.training,
		prediction.New(st, r, cache.New(cfg, db.RDB)),
		ranking.New(ranking.WithConcurrency(cfg.Ranking.Concurrency)),
	)

	router, err := router.Init(cfg, svc)
	if err != nil {
		return nil, err
	}

	s.restServer = &http.Server{
		Addr:    cfg.RESTAddr(),
		Handler: router,
	}

	// Initialize metrics server.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started training workers.
	s.training.Serve()

	// Started metrics server.
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if errors.Is(err, http.ErrServerClosed) {
					return
				}
				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	// Started REST server.
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Errorf("rest server closed unexpect: %s", err.Error())
		return err
	}

	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.GracefulStopTimeout)
	defer cancel()

	// Stop REST server.
	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %s", err.Error())
	} else {
		logger.Info("rest server closed under request")
	}

	// Stop metrics server.
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}

	// Enqueued runs are trained to completion.
	s.training.Stop()
	logger.Info("training closed under request")

	// Close database.
	if sqlDB, err := s.database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Errorf("database failed to close: %s", err.Error())
		}
	}

	if s.database.RDB != nil {
		if err := s.database.RDB.Close(); err != nil {
			logger.Errorf("redis failed to close: %s", err.Error())
		}
	}
}
