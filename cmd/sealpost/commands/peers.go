package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func peersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "List identifiers registered on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Relay == nil {
				return fmt.Errorf("no server configured. use --server")
			}
			peers, err := appCtx.Relay.ListClients(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range peers {
				fmt.Println(p)
			}
			return nil
		},
	}
}
