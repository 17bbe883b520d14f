package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyperengineering/coda"
)

var (
	cfgAPIKey  string
	cfgBaseURL string
	cfgDebug   bool
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "coda",
	Short: "Coda - MCP bridge and CLI for the Coda API",
	Long: `Coda bridges the Coda.io REST API to the Model Context Protocol,
exposing docs, pages, tables, rows, and formulas as tools for LLM agents.

The same operations are available directly as CLI commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgAPIKey, "api-key", "", "Coda API token (default: CODA_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfgBaseURL, "base-url", "", "API endpoint override")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Enable request logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output raw JSON")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(buttonCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// initConfig layers configuration: flags > environment > config file.
// The config file is optional ($XDG_CONFIG_HOME/coda/config.yaml).
func initConfig() {
	viper.SetEnvPrefix("CODA")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "coda"))
	}
	_ = viper.ReadInConfig()
}

func loadConfig() coda.Config {
	cfg := coda.DefaultConfig()
	cfg.APIToken = viper.GetString("api_key")
	if v := viper.GetString("base_url"); v != "" {
		cfg.BaseURL = v
	}
	cfg.Debug = viper.GetBool("debug")
	cfg.Logger = buildLogger(cfg.Debug)
	return cfg
}

func newClient() (*coda.Client, error) {
	return coda.New(loadConfig())
}

// buildLogger returns a production zap logger writing to stderr.
// stdout stays clean: it carries either command output or, under the
// mcp command, the protocol stream.
func buildLogger(debug bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
