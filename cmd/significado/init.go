package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/significado/internal/auth"
	"github.com/mistakeknot/significado/internal/cli"
)

func initCmd() *cobra.Command {
	var client, keysFile string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Add an API key for a client to the keys file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if keysFile == "" {
				keysFile = auth.ResolveKeysPath()
			}
			key, err := cli.InitKeysFile(keysFile, client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "client: %s\nkey: %s\nkeys file: %s\n", client, key, keysFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "client the key belongs to")
	cmd.Flags().StringVar(&keysFile, "keys-file", "", "keys file (default $SIGNIFICADO_KEYS_FILE or ./significado.keys.yaml)")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
