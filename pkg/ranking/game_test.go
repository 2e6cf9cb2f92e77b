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

package ranking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadGamesCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
		expect  func(t *testing.T, games []Game, err error)
	}{
		{
			name: "load games",
			content: `date,home_team,away_team,home_score,away_score
2024-01-01,KU,MU,80,70
2024-01-02, KSU ,KU,0,0
`,
			expect: func(t *testing.T, games []Game, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(games, 2)
				assert.Equal(Game{
					Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
					HomeTeam:  "KU",
					AwayTeam:  "MU",
					HomeScore: 80,
					AwayScore: 70,
				}, games[0])
				assert.Equal("KSU", games[1].HomeTeam)
				assert.True(games[0].Completed())
				assert.False(games[1].Completed())
				assert.Equal(float64(10), games[0].Margin())
				assert.True(games[0].HomeWin())
			},
		},
		{
			name: "invalid date",
			content: `date,home_team,away_team,home_score,away_score
yesterday,KU,MU,80,70
`,
			expect: func(t *testing.T, games []Game, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `row 1: invalid date "yesterday"`)
				assert.Nil(games)
			},
		},
		{
			name: "missing team",
			content: `date,home_team,away_team,home_score,away_score
2024-01-01,KU,,80,70
`,
			expect: func(t *testing.T, games []Game, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "row 1: home_team and away_team are required")
				assert.Nil(games)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			games, err := LoadGamesCSV(strings.NewReader(tc.content))
			tc.expect(t, games, err)
		})
	}
}
