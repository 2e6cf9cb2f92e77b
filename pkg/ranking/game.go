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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// DateLayout is the layout of snapshot and CSV dates.
const DateLayout = "2006-01-02"

// Game is a single head-to-head result.
type Game struct {
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// Completed reports whether both teams scored, unplayed games carry zero scores.
func (g Game) Completed() bool {
	return g.HomeScore > 0 && g.AwayScore > 0
}

// Margin is the home score minus the away score.
func (g Game) Margin() float64 {
	return float64(g.HomeScore - g.AwayScore)
}

// HomeWin reports whether the home team won.
func (g Game) HomeWin() bool {
	return g.HomeScore > g.AwayScore
}

// Day is the calendar day of the game.
func (g Game) Day() time.Time {
	return truncateDay(g.Date)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// gameRecord is a row of a games csv file.
type gameRecord struct {
	Date      string `csv:"date"`
	HomeTeam  string `csv:"home_team"`
	AwayTeam  string `csv:"away_team"`
	HomeScore int    `csv:"home_score"`
	AwayScore int    `csv:"away_score"`
}

// LoadGamesCSV reads games from csv with the header
// date,home_team,away_team,home_score,away_score.
func LoadGamesCSV(r io.Reader) ([]Game, error) {
	var records []*gameRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(records))
	for i, record := range records {
		date, err := parseDate(record.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		homeTeam, awayTeam := strings.TrimSpace(record.HomeTeam), strings.TrimSpace(record.AwayTeam)
		if homeTeam == "" || awayTeam == "" {
			return nil, fmt.Errorf("row %d: home_team and away_team are required", i+1)
		}

		games = append(games, Game{
			Date:      date,
			HomeTeam:  homeTeam,
			AwayTeam:  awayTeam,
			HomeScore: record.HomeScore,
			AwayScore: record.AwayScore,
		})
	}

	return games, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
