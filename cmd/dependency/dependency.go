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

package dependency

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "github.com/statsml/statsml/internal/dflog"
)

// InitCommandAndConfig adds the config flag and the version command to cmd and
// loads the config file before cmd runs.
func InitCommandAndConfig(cmd *cobra.Command, defaultConfigPath, envPrefix string, config any) {
	var cfgFile string
	cobra.OnInitialize(func() {
		if err := initConfig(cmd, cfgFile, defaultConfigPath, envPrefix, config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s", defaultConfigPath))

	cmd.AddCommand(VersionCmd)
}

// initConfig reads in config file and ENV variables if set. A missing default
// config file is not an error, defaults and environment apply. Flags set on
// the command line override both.
func initConfig(cmd *cobra.Command, cfgFile, defaultConfigPath, envPrefix string, config any) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigFile(defaultConfigPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !(errors.As(err, &notFound) || os.IsNotExist(errors.Cause(err))) {
			return errors.Wrapf(err, "read config file %s", v.ConfigFileUsed())
		}
	}

	if err := v.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.StringToIPHookFunc(),
	))); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	return nil
}

// SetupQuitSignalHandler calls handler once on SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s := <-signals
		logger.Infof("receive %s signal, stopping", s.String())
		handler()
	}()
}
