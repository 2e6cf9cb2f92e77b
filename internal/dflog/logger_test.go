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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger_InitStatsml(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	dir := t.TempDir()

	require.NoError(InitStatsml(false, false, dir, LogRotateConfig{MaxSize: 1, MaxAge: 1, MaxBackups: 1}))
	WithModelRun(1, "kitchen-sink").Infof("training model %s", "kitchen-sink")
	JobLogger.Info("job")
	RankingLogger.Info("ranking")
	_ = CoreLogger.Sync()
	_ = JobLogger.Sync()
	_ = RankingLogger.Sync()

	for _, name := range []string{CoreLogFileName, JobLogFileName, RankingLogFileName} {
		_, err := os.Stat(filepath.Join(dir, "statsml", name))
		assert.NoError(err, name)
	}

	b, err := os.ReadFile(filepath.Join(dir, "statsml", CoreLogFileName))
	require.NoError(err)
	assert.Contains(string(b), "modelRunID")
	assert.Contains(string(b), "training model kitchen-sink")

	require.NoError(InitStatsml(true, true, dir, LogRotateConfig{}))
	assert.True(IsDebug())
	SetLevel(zap.InfoLevel)
	assert.False(IsDebug())
}

func TestLogger_RedirectStdoutAndStderr(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	dir := t.TempDir()

	// Console logging keeps stdout and stderr untouched.
	RedirectStdoutAndStderr(true, dir)
	_, err := os.Stat(filepath.Join(dir, StdoutLogFileName))
	assert.True(os.IsNotExist(err))

	f, err := os.CreateTemp(dir, "out")
	require.NoError(err)
	defer f.Close()

	path := filepath.Join(dir, StdoutLogFileName)
	redirect(path, f)
	_, err = f.WriteString("foo\n")
	require.NoError(err)

	b, err := os.ReadFile(path)
	require.NoError(err)
	assert.Contains(string(b), "redirect at")
	assert.Contains(string(b), "foo")
}
