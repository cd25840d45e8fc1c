package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"xrayctl/internal/config"
	logg "xrayctl/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "xrayctl"

var (
	configPath = "xrayctl.toml"
	baseDir    = ""

	//go:embed version.txt
	version string
)

var errMissingConfigs = errors.New(
	"necessary config files do not exist, generate them with " + appName + " generate")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Manage Caddy and Xray configs",
	Long: "A tool to manage Caddy and Xray configs: generate them from templates,\n" +
		"add, list or remove proxy clients and create vmess connection strings.",
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig loads the settings and installs the global logger. Errors
// propagate through RunE so they land on stderr, not stdout.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize config: %w", err)
	}

	if baseDir != "" {
		cfg.BaseDir = baseDir
	}

	logger := logg.New(cfg.Logger).Desugar()
	zap.ReplaceGlobals(logger)

	return cfg, nil
}

func init() {
	rootCmd.Version = strings.TrimSpace(version)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "xrayctl.toml", "path to toml settings")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory holding caddy/, xray/, users.json and templates/")
}
