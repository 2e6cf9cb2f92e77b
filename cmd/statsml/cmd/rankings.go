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

package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/pkg/ranking"
)

var rankingsConfig = struct {
	games       string
	estimator   string
	concurrency int
}{
	estimator:   ranking.LeastSquaresName,
	concurrency: ranking.DefaultConcurrency,
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "compute daily power rankings from a csv file of games",
	Long: `compute one power ranking snapshot per day of a csv file of games with
header date,home_team,away_team,home_score,away_score, and print the snapshots
as json.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.InitStatsml(cfg.Verbose, true, "", cfg.LogRotateConfig()); err != nil {
			return errors.Wrap(err, "init statsml logger")
		}

		return runRankings(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	flags := rankingsCmd.Flags()
	flags.StringVar(&rankingsConfig.games, "games", rankingsConfig.games, "the path of the csv file of games")
	flags.StringVar(&rankingsConfig.estimator, "estimator", rankingsConfig.estimator, "the rating estimator, lse or logistic")
	flags.IntVar(&rankingsConfig.concurrency, "concurrency", rankingsConfig.concurrency, "the number of snapshots computed in parallel")
	_ = rankingsCmd.MarkFlagRequired("games")
}

func runRankings(ctx context.Context, out io.Writer) error {
	estimator, err := ranking.NewEstimator(rankingsConfig.estimator)
	if err != nil {
		return err
	}

	f, err := os.Open(rankingsConfig.games)
	if err != nil {
		return err
	}
	defer f.Close()

	games, err := ranking.LoadGamesCSV(f)
	if err != nil {
		return errors.Wrapf(err, "load games from %s", rankingsConfig.games)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	snapshots, err := ranking.New(ranking.WithConcurrency(rankingsConfig.concurrency)).Compute(ctx, games, estimator)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshots)
}
