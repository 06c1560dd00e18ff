package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// send <peer> <message>: seal and send a message to <peer>.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer> <message>",
		Short: "Seal and send a message to a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if appCtx.Relay == nil {
				return fmt.Errorf("no server configured. use --server")
			}
			msgID, err := appCtx.Messages.Send(cmd.Context(), passphrase, args[0], []byte(args[1]))
			if err != nil {
				return err
			}
			fmt.Printf("sent (message id %s)\n", msgID)
			return nil
		},
	}
}
