package cmd

import (
	"fmt"

	"xrayctl/internal/caddy"
	"xrayctl/internal/storage"
	"xrayctl/internal/users"
	"xrayctl/internal/vmess"
	"xrayctl/internal/xray"

	"github.com/spf13/cobra"
)

var connstrUUID string

var connstrCmd = &cobra.Command{
	Use:   "connstr",
	Short: "Create a connection string for a client",
	Args:  cobra.NoArgs,
	RunE:  runConnstr,
}

func runConnstr(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	store := storage.New(cfg.BaseDir)

	if !store.Exists(store.CaddyfilePath()) || !store.Exists(store.XrayConfigPath()) {
		return errMissingConfigs
	}

	caddyfile, err := store.ReadFile(store.CaddyfilePath())
	if err != nil {
		return err
	}

	domain, err := caddy.Domain(caddyfile)
	if err != nil {
		return err
	}

	xrayConfig, err := xray.Load(store)
	if err != nil {
		return err
	}

	if xrayConfig.Count() == 0 {
		return fmt.Errorf("no clients defined, add one with %s client add", appName)
	}

	id := connstrUUID
	if id == "" {
		usersConfig, err := users.Load(store)
		if err != nil {
			return err
		}

		if err := listClients(cmd, xrayConfig, usersConfig); err != nil {
			return err
		}

		number, err := promptSequence(cmd,
			"Which client to create a connection string for (Enter the sequence number and press Enter)? ")
		if err != nil {
			return err
		}

		id, err = xrayConfig.UUID(number)
		if err != nil {
			return err
		}
	}

	path, err := xrayConfig.Path()
	if err != nil {
		return err
	}

	link := vmess.Link{
		Version:    "2",
		Name:       domain,
		Address:    domain,
		Port:       "443",
		ID:         id,
		AlterID:    "0",
		Network:    xrayConfig.Network(),
		HeaderType: "none",
		Host:       domain,
		Path:       path,
		TLS:        "tls",
	}

	connstr, err := link.Encode()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), connstr)

	return nil
}

func init() {
	connstrCmd.Flags().StringVarP(&connstrUUID, "uuid", "u", "", "client uuid to build the connection string for")
	rootCmd.AddCommand(connstrCmd)
}
