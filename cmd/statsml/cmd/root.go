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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/statsml/statsml/cmd/dependency"
	logger "github.com/statsml/statsml/internal/dflog"
	"github.com/statsml/statsml/manager"
	"github.com/statsml/statsml/manager/config"
	"github.com/statsml/statsml/version"
)

const (
	statsmlEnvPrefix = "statsml"
)

var (
	// Initialize default statsml config.
	cfg = config.New()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "statsml",
	Short: "the model lifecycle manager of statsml",
	Long: `statsml is a long-running process which registers statistical models,
trains them asynchronously, serves predictions from trained runs and computes
team power rankings, offering http apis.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Convert(); err != nil {
			return errors.Wrap(err, "convert config")
		}

		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "validate config")
		}

		// Initialize logger.
		if err := logger.InitStatsml(cfg.Verbose, cfg.Console, cfg.Server.LogDir, cfg.LogRotateConfig()); err != nil {
			return errors.Wrap(err, "init statsml logger")
		}
		logger.RedirectStdoutAndStderr(cfg.Console, filepath.Join(cfg.Server.LogDir, logger.LogDirName))

		return runStatsml()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, config.DefaultConfigPath, statsmlEnvPrefix, cfg)

	flags := rootCmd.Flags()
	flags.BoolVar(&cfg.Console, "console", cfg.Console, "whether logger output records to the stdout")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "whether logger use debug level")

	rootCmd.AddCommand(rankingsCmd)
}

func runStatsml() error {
	// statsml config values.
	s, _ := yaml.Marshal(cfg)
	logger.Infof("version:\n%s", version.Info())
	logger.Infof("statsml configuration:\n%s", string(s))

	svr, err := manager.New(cfg)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
