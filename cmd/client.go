package cmd

import (
	"errors"
	"fmt"

	"xrayctl/internal/storage"
	"xrayctl/internal/users"
	"xrayctl/internal/xray"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var clientCmd = &cobra.Command{
	Use:       "client {add|list|remove}",
	Short:     "Add, list or remove clients",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"add", "list", "remove"},
	RunE:      runClient,
}

func runClient(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	store := storage.New(cfg.BaseDir)

	if !store.Exists(store.CaddyfilePath()) ||
		!store.Exists(store.UsersPath()) ||
		!store.Exists(store.XrayConfigPath()) {
		return errMissingConfigs
	}

	usersConfig, err := users.Load(store)
	if err != nil {
		return err
	}

	xrayConfig, err := xray.Load(store)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return addClient(cmd, xrayConfig, usersConfig)
	case "list":
		return listClients(cmd, xrayConfig, usersConfig)
	case "remove":
		return removeClient(cmd, xrayConfig, usersConfig)
	}

	return nil
}

func addClient(cmd *cobra.Command, xrayConfig *xray.Config, usersConfig *users.Config) error {
	id, err := xrayConfig.AddClient()
	if err != nil {
		return err
	}

	username, err := prompt(cmd, "What should I call this user (Enter the username and press Enter)? ")
	if err != nil {
		return err
	}

	if err := usersConfig.Set(id, username); err != nil {
		return err
	}

	zap.S().Infow("client added", "uuid", id, "username", username)

	return nil
}

func listClients(cmd *cobra.Command, xrayConfig *xray.Config, usersConfig *users.Config) error {
	ids, err := xrayConfig.UUIDs()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "#\tName\t\tUUID")

	for i, id := range ids {
		username, err := usersConfig.Get(id)
		if err != nil {
			// present in the xray config but not in users.json
			username = "(unknown)"
		}
		fmt.Fprintf(out, "%d\t%s\t\t%s\n", i+1, username, id)
	}

	return nil
}

func removeClient(cmd *cobra.Command, xrayConfig *xray.Config, usersConfig *users.Config) error {
	if xrayConfig.Count() == 0 {
		return errors.New("no clients defined")
	}

	if err := listClients(cmd, xrayConfig, usersConfig); err != nil {
		return err
	}

	number, err := promptSequence(cmd, "Which client to remove (Enter the sequence number and press Enter)? ")
	if err != nil {
		return err
	}

	id, err := xrayConfig.Remove(number)
	if err != nil {
		return err
	}

	if err := usersConfig.Delete(id); err != nil {
		zap.S().Warnw("client was missing from the users config", "uuid", id)
	}

	zap.S().Infow("client removed", "uuid", id)

	return nil
}

func init() {
	rootCmd.AddCommand(clientCmd)
}
