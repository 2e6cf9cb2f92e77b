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

//go:generate mockgen -destination mocks/store_mock.go -source store.go -package mocks

package store

import (
	"context"
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/statsml/statsml/manager/models"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/ranking"
	"github.com/statsml/statsml/pkg/types"
)

// MaxMetricValueLength is the maximum number of bytes of a persisted error metric.
const MaxMetricValueLength = 255

// postgresAdvanceModelRunSequenceSQL moves the id sequence of model runs past
// the largest id, explicit ids do not consume the sequence on postgres.
const postgresAdvanceModelRunSequenceSQL = "SELECT setval(pg_get_serial_sequence('model_run', 'id'), (SELECT MAX(id) FROM model_run))"

// GameFilter narrows the games of ListGames, zero values match everything.
type GameFilter struct {
	Year   int
	TeamID uint
}

// Store is the interface used for persistence of the catalog, runs, metrics and games.
type Store interface {
	// Session returns a store with its own database session.
	Session() Store

	// ListModels returns every catalog entry ordered by name.
	ListModels(context.Context) ([]models.Model, error)

	// GetModelByName returns the catalog entry of the model name.
	GetModelByName(context.Context, string) (*models.Model, error)

	// SyncModels upserts the given catalog entries as available and marks
	// every other entry as unavailable in a single transaction.
	SyncModels(context.Context, []models.Model) error

	// CreateModelRun creates a pending run of the model name, a zero id is assigned by the database.
	// An explicit id advances the id sequence so later assigned ids do not collide.
	CreateModelRun(context.Context, string, uint, map[string]any) (*models.ModelRun, error)

	// GetModelRun returns the run with its owning model, without the artifact.
	GetModelRun(context.Context, uint) (*models.ModelRun, error)

	// GetModelRunArtifact returns the serialized pipeline of the run.
	GetModelRunArtifact(context.Context, uint) ([]byte, error)

	// UpdateModelRunStatus moves the run from one status to another only if it is still in the first one.
	UpdateModelRunStatus(context.Context, uint, string, string) error

	// CompleteModelRun stores the artifact and metrics of a running run and marks it successful.
	CompleteModelRun(context.Context, uint, []byte, map[string]string) error

	// FailModelRun stores the error metric of a running run and marks it failed.
	FailModelRun(context.Context, uint, string) error

	// ListModelRunMetrics returns the metrics of the run in insertion order.
	ListModelRunMetrics(context.Context, uint) ([]models.ModelRunMetric, error)

	// ListModelRunsByStatus returns the runs in the status.
	ListModelRunsByStatus(context.Context, string) ([]models.ModelRun, error)

	// ListGames returns completed games ordered by date and team names.
	ListGames(context.Context, GameFilter) ([]ranking.Game, error)
}

type store struct {
	db *gorm.DB
}

// New returns a new Store instance.
func New(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Session() Store {
	return &store{db: s.db.Session(&gorm.Session{NewDB: true})}
}

func (s *store) ListModels(ctx context.Context) ([]models.Model, error) {
	var entries []models.Model
	if err := s.db.WithContext(ctx).Order("name").Find(&entries).Error; err != nil {
		return nil, persistenceError(err, "list models")
	}

	return entries, nil
}

func (s *store) GetModelByName(ctx context.Context, name string) (*models.Model, error) {
	model := models.Model{}
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dferrors.Newf(dferrors.CodeNotFound, "model %s not found", name)
		}

		return nil, persistenceError(err, "get model")
	}

	return &model, nil
}

func (s *store) SyncModels(ctx context.Context, entries []models.Model) error {
	names := make([]string, 0, len(entries))
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			names = append(names, entry.Name)

			model := models.Model{}
			err := tx.Where("name = ?", entry.Name).First(&model).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			model.Name = entry.Name
			model.Type = entry.Type
			model.Description = entry.Description
			model.ClassName = entry.ClassName
			model.Features = entry.Features
			model.Labels = entry.Labels
			model.FeaturesOK = true
			model.PipelineOK = true
			if err := tx.Save(&model).Error; err != nil {
				return err
			}
		}

		unavailable := tx.Model(&models.Model{})
		if len(names) > 0 {
			unavailable = unavailable.Where("name NOT IN ?", names)
		} else {
			unavailable = unavailable.Where("1 = 1")
		}

		return unavailable.Updates(map[string]any{
			"features_ok": false,
			"pipeline_ok": false,
		}).Error
	}); err != nil {
		return persistenceError(err, "sync models")
	}

	return nil
}

func (s *store) CreateModelRun(ctx context.Context, modelName string, id uint, parameters map[string]any) (*models.ModelRun, error) {
	run := models.ModelRun{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.Model{}
		if err := tx.Where("name = ?", modelName).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dferrors.Newf(dferrors.CodeNotFound, "model %s not found", modelName)
			}

			return err
		}

		if id > 0 {
			var count int64
			if err := tx.Model(&models.ModelRun{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return dferrors.Newf(dferrors.CodeInvalidState, "model run %d already exists", id)
			}
		}

		run = models.ModelRun{
			BaseModel:  models.BaseModel{ID: id},
			ModelID:    model.ID,
			Model:      model,
			Status:     types.ModelRunStatePending,
			Parameters: parameters,
		}

		if err := tx.Omit("Model").Create(&run).Error; err != nil {
			return err
		}

		if id > 0 {
			return advanceModelRunSequence(tx).Error
		}

		return nil
	}); err != nil {
		return nil, persistenceError(err, "create model run")
	}

	return &run, nil
}

func (s *store) GetModelRun(ctx context.Context, id uint) (*models.ModelRun, error) {
	run := models.ModelRun{}
	if err := s.db.WithContext(ctx).Preload("Model").Omit("result").First(&run, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dferrors.Newf(dferrors.CodeNotFound, "model run %d not found", id)
		}

		return nil, persistenceError(err, "get model run")
	}

	return &run, nil
}

func (s *store) GetModelRunArtifact(ctx context.Context, id uint) ([]byte, error) {
	run := models.ModelRun{}
	if err := s.db.WithContext(ctx).Select("id", "result").First(&run, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dferrors.Newf(dferrors.CodeNotFound, "model run %d not found", id)
		}

		return nil, persistenceError(err, "get model run artifact")
	}

	if len(run.Result) == 0 {
		return nil, dferrors.Newf(dferrors.CodeNotFound, "model run %d has no trained artifact", id)
	}

	return run.Result, nil
}

func (s *store) UpdateModelRunStatus(ctx context.Context, id uint, from, to string) error {
	if err := CanTransit(from, to); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return compareAndSetStatus(tx, id, from, map[string]any{
			"status": to,
		})
	}); err != nil {
		return persistenceError(err, "update model run status")
	}

	return nil
}

func (s *store) CompleteModelRun(ctx context.Context, id uint, artifact []byte, metrics map[string]string) error {
	if len(artifact) == 0 {
		return dferrors.Newf(dferrors.CodeValidation, "model run %d requires a trained artifact", id)
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := compareAndSetStatus(tx, id, types.ModelRunStateRunning, map[string]any{
			"status":       types.ModelRunStateSuccess,
			"result":       artifact,
			"has_artifact": true,
			"completed_at": time.Now(),
		}); err != nil {
			return err
		}

		return createMetrics(tx, id, metrics)
	}); err != nil {
		return persistenceError(err, "complete model run")
	}

	return nil
}

func (s *store) FailModelRun(ctx context.Context, id uint, message string) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := compareAndSetStatus(tx, id, types.ModelRunStateRunning, map[string]any{
			"status":       types.ModelRunStateFailed,
			"completed_at": time.Now(),
		}); err != nil {
			return err
		}

		return createMetrics(tx, id, map[string]string{
			types.MetricError: TruncateMessage(message, MaxMetricValueLength),
		})
	}); err != nil {
		return persistenceError(err, "fail model run")
	}

	return nil
}

func (s *store) ListModelRunMetrics(ctx context.Context, id uint) ([]models.ModelRunMetric, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ModelRun{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, persistenceError(err, "list model run metrics")
	}

	if count == 0 {
		return nil, dferrors.Newf(dferrors.CodeNotFound, "model run %d not found", id)
	}

	var metrics []models.ModelRunMetric
	if err := s.db.WithContext(ctx).Where("model_run_id = ?", id).Order("id").Find(&metrics).Error; err != nil {
		return nil, persistenceError(err, "list model run metrics")
	}

	return metrics, nil
}

func (s *store) ListModelRunsByStatus(ctx context.Context, status string) ([]models.ModelRun, error) {
	var runs []models.ModelRun
	if err := s.db.WithContext(ctx).Preload("Model").Omit("result").Where("status = ?", status).Order("id").Find(&runs).Error; err != nil {
		return nil, persistenceError(err, "list model runs")
	}

	return runs, nil
}

// gameRow is a game joined with its season and teams.
type gameRow struct {
	Date      time.Time
	HomeTeam  string
	HomeCode  string
	HomeScore int
	AwayTeam  string
	AwayCode  string
	AwayScore int
}

func (s *store) ListGames(ctx context.Context, filter GameFilter) ([]ranking.Game, error) {
	tx := s.db.WithContext(ctx).
		Table("game AS g").
		Select("g.date, h.name AS home_team, h.abbreviation AS home_code, g.home_score, a.name AS away_team, a.abbreviation AS away_code, g.away_score").
		Joins("INNER JOIN season s ON g.season_id = s.id").
		Joins("INNER JOIN team h ON g.home_team_id = h.id").
		Joins("INNER JOIN team a ON g.away_team_id = a.id").
		Where("g.home_score > 0 AND g.away_score > 0")

	if filter.Year > 0 {
		tx = tx.Where("s.year = ?", filter.Year)
	}

	if filter.TeamID > 0 {
		tx = tx.Where("(h.id = ? OR a.id = ?)", filter.TeamID, filter.TeamID)
	}

	var rows []gameRow
	if err := tx.Order("g.date, h.name, a.name").Scan(&rows).Error; err != nil {
		return nil, persistenceError(err, "list games")
	}

	games := make([]ranking.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, ranking.Game{
			Date:      row.Date,
			HomeTeam:  teamCode(row.HomeCode, row.HomeTeam),
			AwayTeam:  teamCode(row.AwayCode, row.AwayTeam),
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
		})
	}

	return games, nil
}

// compareAndSetStatus updates the run only if it is still in the from status.
// advanceModelRunSequence keeps later database assigned ids from colliding
// with an explicit id. Mysql and sqlite derive the next id from the table.
func advanceModelRunSequence(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() != "postgres" {
		return tx
	}

	return tx.Exec(postgresAdvanceModelRunSequenceSQL)
}

func compareAndSetStatus(tx *gorm.DB, id uint, from string, values map[string]any) error {
	result := tx.Model(&models.ModelRun{}).Where("id = ? AND status = ?", id, from).Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 1 {
		return nil
	}

	run := models.ModelRun{}
	if err := tx.Select("id", "status").First(&run, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dferrors.Newf(dferrors.CodeNotFound, "model run %d not found", id)
		}

		return err
	}

	return dferrors.Newf(dferrors.CodeInvalidState, "model run %d is in %s state, not %s", id, run.Status, from)
}

func createMetrics(tx *gorm.DB, id uint, metrics map[string]string) error {
	if len(metrics) == 0 {
		return nil
	}

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]models.ModelRunMetric, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.ModelRunMetric{
			ModelRunID: id,
			Name:       name,
			Value:      metrics[name],
		})
	}

	return tx.Create(&rows).Error
}

// TruncateMessage cuts message to at most limit bytes without splitting a rune.
func TruncateMessage(message string, limit int) string {
	if len(message) <= limit {
		return message
	}

	message = message[:limit]
	for len(message) > 0 && !utf8.ValidString(message) {
		message = message[:len(message)-1]
	}

	return message
}

func teamCode(code, name string) string {
	if code != "" {
		return code
	}

	return name
}

// persistenceError keeps coded errors and classifies everything else as persistence failures.
func persistenceError(err error, action string) error {
	if _, ok := dferrors.CodeOf(err); ok {
		return err
	}

	return dferrors.New(dferrors.CodePersistence, pkgerrors.Wrap(err, action).Error())
}
