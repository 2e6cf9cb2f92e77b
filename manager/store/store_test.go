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

package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/statsml/statsml/manager/database"
	"github.com/statsml/statsml/manager/models"
	"github.com/statsml/statsml/pkg/dferrors"
	"github.com/statsml/statsml/pkg/ranking"
	"github.com/statsml/statsml/pkg/types"
)

var (
	mockModel = models.Model{
		Name:        "foo",
		Type:        types.ModelTypeSingleSeason,
		Description: "bar",
		ClassName:   "statistical.Foo",
		Features:    models.Array{"homeTeam", "awayTeam"},
		Labels:      models.Array{"margin"},
	}

	mockArtifact = []byte("baz")
)

func newTestStore(t *testing.T) (*gorm.DB, Store) {
	db, err := database.OpenSqlite(filepath.Join(t.TempDir(), "statsml.db"), true, false)
	require.NoError(t, err)

	return db, New(db)
}

func newTestModelRun(t *testing.T, s Store, status string) *models.ModelRun {
	ctx := context.Background()
	require.NoError(t, s.SyncModels(ctx, []models.Model{mockModel}))

	run, err := s.CreateModelRun(ctx, mockModel.Name, 0, nil)
	require.NoError(t, err)

	switch status {
	case types.ModelRunStateRunning:
		require.NoError(t, s.UpdateModelRunStatus(ctx, run.ID, types.ModelRunStatePending, types.ModelRunStateRunning))
	case types.ModelRunStateSuccess:
		require.NoError(t, s.UpdateModelRunStatus(ctx, run.ID, types.ModelRunStatePending, types.ModelRunStateRunning))
		require.NoError(t, s.CompleteModelRun(ctx, run.ID, mockArtifact, map[string]string{types.MetricMSE: "0"}))
	case types.ModelRunStateFailed:
		require.NoError(t, s.UpdateModelRunStatus(ctx, run.ID, types.ModelRunStatePending, types.ModelRunStateRunning))
		require.NoError(t, s.FailModelRun(ctx, run.ID, "foo"))
	}

	return run
}

func TestStore_SyncModels(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(t *testing.T, db *gorm.DB)
		entries []models.Model
		expect  func(t *testing.T, s Store, err error)
	}{
		{
			name: "mark discovered models available and stale models unavailable",
			mock: func(t *testing.T, db *gorm.DB) {
				require.NoError(t, db.Create(&models.Model{Name: "stale", Type: types.ModelTypeMultiSeason, FeaturesOK: true, PipelineOK: true}).Error)
			},
			entries: []models.Model{mockModel},
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				require.NoError(t, err)

				entries, err := s.ListModels(context.Background())
				require.NoError(t, err)
				require.Len(t, entries, 2)
				assert.Equal("foo", entries[0].Name)
				assert.True(entries[0].FeaturesOK)
				assert.True(entries[0].PipelineOK)
				assert.Equal(models.Array{"homeTeam", "awayTeam"}, entries[0].Features)
				assert.Equal("stale", entries[1].Name)
				assert.False(entries[1].FeaturesOK)
				assert.False(entries[1].PipelineOK)
			},
		},
		{
			name: "roll back every upsert when marking stale models fails",
			mock: func(t *testing.T, db *gorm.DB) {
				require.NoError(t, db.Create(&models.Model{Name: "foo", Type: "old", Description: "old"}).Error)
				require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_stale_models", func(tx *gorm.DB) {
					if _, ok := tx.Statement.Dest.(map[string]any); ok {
						_ = tx.AddError(errors.New("baz"))
					}
				}))
			},
			entries: []models.Model{mockModel, {Name: "qux", Type: types.ModelTypeMultiSeason}},
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsPersistence(err))
				assert.Contains(err.Error(), "sync models")
				assert.Contains(err.Error(), "baz")

				model, err := s.GetModelByName(context.Background(), "foo")
				require.NoError(t, err)
				assert.Equal("old", model.Type)
				assert.Equal("old", model.Description)
				assert.False(model.FeaturesOK)

				_, err = s.GetModelByName(context.Background(), "qux")
				assert.True(dferrors.IsNotFound(err))

				entries, err := s.ListModels(context.Background())
				require.NoError(t, err)
				assert.Len(entries, 1)
			},
		},
		{
			name: "update existing entry",
			mock: func(t *testing.T, db *gorm.DB) {
				require.NoError(t, db.Create(&models.Model{Name: "foo", Type: "old"}).Error)
			},
			entries: []models.Model{mockModel},
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				require.NoError(t, err)

				model, err := s.GetModelByName(context.Background(), "foo")
				require.NoError(t, err)
				assert.Equal(types.ModelTypeSingleSeason, model.Type)
				assert.Equal("bar", model.Description)
				assert.True(model.FeaturesOK)

				entries, err := s.ListModels(context.Background())
				require.NoError(t, err)
				assert.Len(entries, 1)
			},
		},
		{
			name: "no discovered models",
			mock: func(t *testing.T, db *gorm.DB) {
				require.NoError(t, db.Create(&models.Model{Name: "foo", Type: "old", FeaturesOK: true, PipelineOK: true}).Error)
			},
			entries: nil,
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				require.NoError(t, err)

				model, err := s.GetModelByName(context.Background(), "foo")
				require.NoError(t, err)
				assert.False(model.FeaturesOK)
				assert.False(model.PipelineOK)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, s := newTestStore(t)
			tc.mock(t, db)
			tc.expect(t, s, s.SyncModels(context.Background(), tc.entries))
		})
	}
}

func TestStore_GetModelByName(t *testing.T) {
	assert := assert.New(t)
	_, s := newTestStore(t)

	_, err := s.GetModelByName(context.Background(), "foo")
	assert.True(dferrors.IsNotFound(err))
	assert.EqualError(err, "model foo not found")
}

func TestStore_CreateModelRun(t *testing.T) {
	tests := []struct {
		name      string
		modelName string
		id        uint
		mock      func(t *testing.T, s Store)
		expect    func(t *testing.T, run *models.ModelRun, err error)
	}{
		{
			name:      "create run with id",
			modelName: "foo",
			id:        7,
			mock: func(t *testing.T, s Store) {
				require.NoError(t, s.SyncModels(context.Background(), []models.Model{mockModel}))
			},
			expect: func(t *testing.T, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(uint(7), run.ID)
				assert.Equal(types.ModelRunStatePending, run.Status)
				assert.Equal("foo", run.Model.Name)
				assert.Nil(run.CompletedAt)
				assert.False(run.HasArtifact)
			},
		},
		{
			name:      "create run without id",
			modelName: "foo",
			mock: func(t *testing.T, s Store) {
				require.NoError(t, s.SyncModels(context.Background(), []models.Model{mockModel}))
			},
			expect: func(t *testing.T, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.NotZero(run.ID)
			},
		},
		{
			name:      "create run without id after an explicit id",
			modelName: "foo",
			mock: func(t *testing.T, s Store) {
				require.NoError(t, s.SyncModels(context.Background(), []models.Model{mockModel}))
				_, err := s.CreateModelRun(context.Background(), "foo", 7, nil)
				require.NoError(t, err)
			},
			expect: func(t *testing.T, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(uint(8), run.ID)
			},
		},
		{
			name:      "run already exists",
			modelName: "foo",
			id:        7,
			mock: func(t *testing.T, s Store) {
				require.NoError(t, s.SyncModels(context.Background(), []models.Model{mockModel}))
				_, err := s.CreateModelRun(context.Background(), "foo", 7, nil)
				require.NoError(t, err)
			},
			expect: func(t *testing.T, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))
				assert.EqualError(err, "model run 7 already exists")
			},
		},
		{
			name:      "model not found",
			modelName: "bar",
			mock:      func(t *testing.T, s Store) {},
			expect: func(t *testing.T, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsNotFound(err))
				assert.Nil(run)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := newTestStore(t)
			tc.mock(t, s)
			run, err := s.CreateModelRun(context.Background(), tc.modelName, tc.id, map[string]any{"fit_intercept": true})
			tc.expect(t, run, err)
		})
	}
}

func TestStore_AdvanceModelRunSequence(t *testing.T) {
	assert := assert.New(t)

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=foo dbname=bar"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	assert.Equal(postgresAdvanceModelRunSequenceSQL, advanceModelRunSequence(db).Statement.SQL.String())

	sqlite, _ := newTestStore(t)
	assert.Empty(advanceModelRunSequence(sqlite).Statement.SQL.String())
}

func TestStore_GetModelRun(t *testing.T) {
	assert := assert.New(t)
	_, s := newTestStore(t)
	created := newTestModelRun(t, s, types.ModelRunStatePending)

	run, err := s.GetModelRun(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal("foo", run.Model.Name)
	assert.Equal(types.ModelRunStatePending, run.Status)

	_, err = s.GetModelRun(context.Background(), 100)
	assert.True(dferrors.IsNotFound(err))
	assert.EqualError(err, "model run 100 not found")
}

func TestStore_UpdateModelRunStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		id     func(run *models.ModelRun) uint
		from   string
		to     string
		expect func(t *testing.T, s Store, run *models.ModelRun, err error)
	}{
		{
			name:   "start pending run",
			status: types.ModelRunStatePending,
			from:   types.ModelRunStatePending,
			to:     types.ModelRunStateRunning,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateRunning, run.Status)
			},
		},
		{
			name:   "start running run",
			status: types.ModelRunStateRunning,
			from:   types.ModelRunStatePending,
			to:     types.ModelRunStateRunning,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))
				assert.EqualError(err, "model run 1 is in RUNNING state, not PENDING")
			},
		},
		{
			name:   "regress running run",
			status: types.ModelRunStateRunning,
			from:   types.ModelRunStateRunning,
			to:     types.ModelRunStatePending,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))

				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateRunning, run.Status)
			},
		},
		{
			name:   "restart failed run",
			status: types.ModelRunStateFailed,
			from:   types.ModelRunStateFailed,
			to:     types.ModelRunStateRunning,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))
			},
		},
		{
			name:   "run not found",
			status: types.ModelRunStatePending,
			id:     func(*models.ModelRun) uint { return 100 },
			from:   types.ModelRunStatePending,
			to:     types.ModelRunStateRunning,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsNotFound(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := newTestStore(t)
			run := newTestModelRun(t, s, tc.status)
			id := run.ID
			if tc.id != nil {
				id = tc.id(run)
			}

			tc.expect(t, s, run, s.UpdateModelRunStatus(context.Background(), id, tc.from, tc.to))
		})
	}
}

func TestStore_CompleteModelRun(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		artifact []byte
		expect   func(t *testing.T, s Store, run *models.ModelRun, err error)
	}{
		{
			name:     "complete running run",
			status:   types.ModelRunStateRunning,
			artifact: mockArtifact,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)

				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateSuccess, run.Status)
				assert.True(run.HasArtifact)
				assert.Nil(run.Result)
				assert.NotNil(run.CompletedAt)

				artifact, err := s.GetModelRunArtifact(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(mockArtifact, artifact)
				assert.Equal(*run.CompletedAt, run.RunDate())

				metrics, err := s.ListModelRunMetrics(context.Background(), run.ID)
				require.NoError(t, err)
				require.Len(t, metrics, 2)
				assert.Equal(types.MetricMSE, metrics[0].Name)
				assert.Equal("1.5", metrics[0].Value)
				assert.Equal(types.MetricNSamples, metrics[1].Name)
				assert.Equal("4", metrics[1].Value)
			},
		},
		{
			name:     "artifact is written once",
			status:   types.ModelRunStateSuccess,
			artifact: []byte("qux"),
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))

				artifact, err := s.GetModelRunArtifact(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(mockArtifact, artifact)
			},
		},
		{
			name:     "complete pending run",
			status:   types.ModelRunStatePending,
			artifact: mockArtifact,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))

				metrics, err := s.ListModelRunMetrics(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Empty(metrics)
			},
		},
		{
			name:     "complete without artifact",
			status:   types.ModelRunStateRunning,
			artifact: nil,
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsValidation(err))

				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateRunning, run.Status)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := newTestStore(t)
			run := newTestModelRun(t, s, tc.status)
			tc.expect(t, s, run, s.CompleteModelRun(context.Background(), run.ID, tc.artifact, map[string]string{
				types.MetricNSamples: "4",
				types.MetricMSE:      "1.5",
			}))
		})
	}
}

func TestStore_FailModelRun(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		message string
		expect  func(t *testing.T, s Store, run *models.ModelRun, err error)
	}{
		{
			name:    "fail running run",
			status:  types.ModelRunStateRunning,
			message: strings.Repeat("x", 300),
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				require.NoError(t, err)

				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateFailed, run.Status)
				assert.False(run.HasArtifact)

				_, err = s.GetModelRunArtifact(context.Background(), run.ID)
				assert.True(dferrors.IsNotFound(err))
				assert.EqualError(err, "model run 1 has no trained artifact")
				assert.NotNil(run.CompletedAt)

				metrics, err := s.ListModelRunMetrics(context.Background(), run.ID)
				require.NoError(t, err)
				require.Len(t, metrics, 1)
				assert.Equal(types.MetricError, metrics[0].Name)
				assert.Len(metrics[0].Value, MaxMetricValueLength)
			},
		},
		{
			name:    "fail successful run",
			status:  types.ModelRunStateSuccess,
			message: "foo",
			expect: func(t *testing.T, s Store, run *models.ModelRun, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsInvalidState(err))

				run, err = s.GetModelRun(context.Background(), run.ID)
				require.NoError(t, err)
				assert.Equal(types.ModelRunStateSuccess, run.Status)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := newTestStore(t)
			run := newTestModelRun(t, s, tc.status)
			tc.expect(t, s, run, s.FailModelRun(context.Background(), run.ID, tc.message))
		})
	}
}

func TestStore_ListModelRuns(t *testing.T) {
	assert := assert.New(t)
	_, s := newTestStore(t)
	running := newTestModelRun(t, s, types.ModelRunStateRunning)

	runs, err := s.Session().ListModelRunsByStatus(context.Background(), types.ModelRunStateRunning)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(running.ID, runs[0].ID)
	assert.Equal("foo", runs[0].Model.Name)

	_, err = s.ListModelRunMetrics(context.Background(), 100)
	assert.True(dferrors.IsNotFound(err))
}

func TestStore_ListGames(t *testing.T) {
	db, s := newTestStore(t)

	seasons := []models.Season{{Year: 2023}, {Year: 2024}}
	require.NoError(t, db.Create(&seasons).Error)
	teams := []models.Team{
		{Name: "Kansas", Abbreviation: "KU"},
		{Name: "Missouri", Abbreviation: "MU"},
		{Name: "Baylor"},
	}
	require.NoError(t, db.Create(&teams).Error)

	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}
	games := []models.Game{
		{SeasonID: seasons[1].ID, Date: day(2), HomeTeamID: teams[0].ID, AwayTeamID: teams[1].ID, HomeScore: 80, AwayScore: 70},
		{SeasonID: seasons[1].ID, Date: day(1), HomeTeamID: teams[2].ID, AwayTeamID: teams[1].ID, HomeScore: 60, AwayScore: 65},
		{SeasonID: seasons[1].ID, Date: day(3), HomeTeamID: teams[2].ID, AwayTeamID: teams[0].ID, HomeScore: 0, AwayScore: 0},
		{SeasonID: seasons[0].ID, Date: day(1).AddDate(-1, 0, 0), HomeTeamID: teams[0].ID, AwayTeamID: teams[2].ID, HomeScore: 90, AwayScore: 50},
	}
	require.NoError(t, db.Omit("Season", "HomeTeam", "AwayTeam").Create(&games).Error)

	tests := []struct {
		name   string
		filter GameFilter
		expect func(t *testing.T, games []ranking.Game, err error)
	}{
		{
			name:   "all completed games",
			filter: GameFilter{},
			expect: func(t *testing.T, games []ranking.Game, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				require.Len(t, games, 3)
				assert.Equal("KU", games[0].HomeTeam)
				assert.Equal("Baylor", games[0].AwayTeam)
				assert.Equal("Baylor", games[1].HomeTeam)
				assert.Equal("KU", games[2].HomeTeam)
			},
		},
		{
			name:   "filter by year",
			filter: GameFilter{Year: 2024},
			expect: func(t *testing.T, games []ranking.Game, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				require.Len(t, games, 2)
				assert.Equal(ranking.Game{
					Date:      day(1),
					HomeTeam:  "Baylor",
					AwayTeam:  "MU",
					HomeScore: 60,
					AwayScore: 65,
				}, ranking.Game{
					Date:      games[0].Date.UTC(),
					HomeTeam:  games[0].HomeTeam,
					AwayTeam:  games[0].AwayTeam,
					HomeScore: games[0].HomeScore,
					AwayScore: games[0].AwayScore,
				})
			},
		},
		{
			name:   "filter by year and team",
			filter: GameFilter{Year: 2024, TeamID: teams[0].ID},
			expect: func(t *testing.T, games []ranking.Game, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				require.Len(t, games, 1)
				assert.Equal("KU", games[0].HomeTeam)
				assert.Equal("MU", games[0].AwayTeam)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			games, err := s.ListGames(context.Background(), tc.filter)
			tc.expect(t, games, err)
		})
	}
}

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		limit   int
		expect  string
	}{
		{
			name:    "short message",
			message: "foo",
			limit:   5,
			expect:  "foo",
		},
		{
			name:    "long message",
			message: "foobar",
			limit:   3,
			expect:  "foo",
		},
		{
			name:    "keep runes whole",
			message: "aé",
			limit:   2,
			expect:  "a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, TruncateMessage(tc.message, tc.limit))
		})
	}
}

func TestCanTransit(t *testing.T) {
	tests := []struct {
		from   string
		to     string
		expect bool
	}{
		{types.ModelRunStatePending, types.ModelRunStateRunning, true},
		{types.ModelRunStateRunning, types.ModelRunStateSuccess, true},
		{types.ModelRunStateRunning, types.ModelRunStateFailed, true},
		{types.ModelRunStatePending, types.ModelRunStateSuccess, false},
		{types.ModelRunStateRunning, types.ModelRunStatePending, false},
		{types.ModelRunStateSuccess, types.ModelRunStateFailed, false},
		{types.ModelRunStateFailed, types.ModelRunStateRunning, false},
	}

	for _, tc := range tests {
		t.Run(tc.from+"-"+tc.to, func(t *testing.T) {
			err := CanTransit(tc.from, tc.to)
			assert.Equal(t, tc.expect, err == nil)
			if !tc.expect {
				assert.True(t, dferrors.IsInvalidState(err))
			}
		})
	}
}
