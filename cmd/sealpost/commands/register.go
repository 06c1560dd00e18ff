package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Publish your signing public key to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if appCtx.Relay == nil {
				return fmt.Errorf("no server configured. use --server")
			}
			clientID, err := appCtx.Messages.Register(cmd.Context(), passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s with server\n", clientID)
			return nil
		},
	}
}
