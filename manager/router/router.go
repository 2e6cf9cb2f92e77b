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

package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	"github.com/statsml/statsml/manager/config"
	"github.com/statsml/statsml/manager/handlers"
	"github.com/statsml/statsml/manager/middlewares"
	"github.com/statsml/statsml/manager/service"
)

const (
	PrometheusSubsystemName = "statsml_manager"
)

func Init(cfg *config.Config, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	if cfg.Metrics.Enable {
		p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
		// URL removes query string.
		// Prometheus metrics need to reduce label,
		// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.FullPath()
		}
		p.Use(r)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.ExposeHeaders = []string{headers.Location}

	// Middleware
	r.Use(gin.Recovery())
	r.Use(middlewares.Logger())
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	apiv1 := r.Group("/api/v1")

	// Health
	apiv1.GET("/healthy", h.GetHealth)

	// Model
	ml := apiv1.Group("/ml")
	ml.GET("/models", h.GetModels)

	// Model Run
	mr := ml.Group("/model_runs")
	mr.POST("", h.CreateModelRun)
	mr.GET(":id", h.GetModelRun)
	mr.GET(":id/metrics", h.GetModelRunMetrics)

	// Training
	ml.POST("/train", h.Train)

	// Prediction
	ml.POST("/predict", h.Predict)

	// Ranking
	rk := apiv1.Group("/rankings")
	rk.GET(":estimator", h.GetRankings)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	return r, nil
}
