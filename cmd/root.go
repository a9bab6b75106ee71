/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlichen/internal/iofs"
	"github.com/gnames/gnlichen/internal/iologger"
	"github.com/gnames/gnlichen/pkg/config"
	app "github.com/gnames/gnlichen/pkg/gnlichen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command. Extracted as a function so
// tests get independent instances.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnlichen",
		Short:   "GNlichen prepares lichen biomonitoring data for analysis",
		Long: `GNlichen is a CLI tool for preparing lichen biomonitoring datasets.
It resolves the short codenames that field records use for lichen
species against a taxonomic reference table, and turns the raw
element-analysis table into a dataset ready for modeling.

The tool provides three phases:
  - decode: derive codenames from a reference table and fill the
    missing scientific names of an observation table
  - clean: filter rows with missing values and bin numeric columns
  - baseline: report the majority-class accuracy for the air
    pollution score

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNLICHEN_*)
  3. Config file (config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (decode.name_column →
  GNLICHEN_DECODE_NAME_COLUMN).

  Examples:
    GNLICHEN_DECODE_REFERENCE_FILE  taxonomic reference table
    GNLICHEN_DECODE_NAME_COLUMN     name column of the target table
    GNLICHEN_LOG_LEVEL              log level (debug/info/warn/error)
    GNLICHEN_JOBS_NUMBER            number of concurrent workers`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnlichen version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnlichen")

	rootCmd.AddCommand(getDecodeCmd())
	rootCmd.AddCommand(getCleanCmd())
	rootCmd.AddCommand(getBaselineCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureBinsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNLICHEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Decode configuration
	v.BindEnv("decode.reference_file", "DECODE_REFERENCE_FILE")
	v.BindEnv("decode.target_file", "DECODE_TARGET_FILE")
	v.BindEnv("decode.output_file", "DECODE_OUTPUT_FILE")
	v.BindEnv("decode.reference_name_column", "DECODE_REFERENCE_NAME_COLUMN")
	v.BindEnv("decode.code_column", "DECODE_CODE_COLUMN")
	v.BindEnv("decode.name_column", "DECODE_NAME_COLUMN")

	// Clean configuration
	v.BindEnv("clean.input_file", "CLEAN_INPUT_FILE")
	v.BindEnv("clean.output_file", "CLEAN_OUTPUT_FILE")

	// Baseline configuration
	v.BindEnv("baseline.input_file", "BASELINE_INPUT_FILE")
	v.BindEnv("baseline.score_column", "BASELINE_SCORE_COLUMN")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
