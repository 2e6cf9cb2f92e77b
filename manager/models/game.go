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

package models

import (
	"time"
)

type Season struct {
	BaseModel
	Year int `gorm:"column:year;index:uk_season_year,unique;not null;comment:season year" json:"year"`
}

type Team struct {
	BaseModel
	Name         string `gorm:"column:name;type:varchar(256);index:uk_team_name,unique;not null;comment:long name" json:"name"`
	Abbreviation string `gorm:"column:abbreviation;type:varchar(32);comment:abbreviation" json:"abbreviation"`
}

type Game struct {
	BaseModel
	SeasonID    uint      `gorm:"index;not null;comment:season id" json:"season_id"`
	Season      Season    `json:"season"`
	Date        time.Time `gorm:"column:date;index;not null;comment:game date" json:"date"`
	HomeTeamID  uint      `gorm:"index;not null;comment:home team id" json:"home_team_id"`
	HomeTeam    Team      `gorm:"foreignKey:HomeTeamID" json:"home_team"`
	AwayTeamID  uint      `gorm:"index;not null;comment:away team id" json:"away_team_id"`
	AwayTeam    Team      `gorm:"foreignKey:AwayTeamID" json:"away_team"`
	HomeScore   int       `gorm:"column:home_score;not null;default:0;comment:home score" json:"home_score"`
	AwayScore   int       `gorm:"column:away_score;not null;default:0;comment:away score" json:"away_score"`
	NeutralSite bool      `gorm:"column:neutral_site;not null;default:false;comment:neutral site" json:"neutral_site"`
}
