package cmd

import (
	"xrayctl/internal/generate"
	"xrayctl/internal/storage"

	"github.com/spf13/cobra"
)

var (
	generateDomain    string
	generateTransport string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Caddy, users and Xray configs",
	Long: "Generate a Caddyfile, an empty users config and an Xray config from the\n" +
		"transport templates. Existing configs are overwritten.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	store := storage.New(cfg.BaseDir)

	// flags win over the settings file
	domain := cfg.Generate.Domain
	if cmd.Flags().Changed("domain") {
		domain = generateDomain
	}

	transport := cfg.Generate.Transport
	if cmd.Flags().Changed("transport") {
		transport = generateTransport
	}

	return generate.New(store).Run(domain, transport)
}

func init() {
	generateCmd.Flags().StringVarP(&generateDomain, "domain", "d", "localhost", "site domain for the Caddyfile")
	generateCmd.Flags().StringVarP(&generateTransport, "transport", "t", "xhttp", "stream transport (ws or xhttp)")
	rootCmd.AddCommand(generateCmd)
}
