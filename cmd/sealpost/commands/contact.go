package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage the local contact directory",
	}

	add := &cobra.Command{
		Use:   "add <peer_id> <exchange_public_key_hex>",
		Short: "Add or overwrite a peer's exchange public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Contacts.Add(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", c.PeerID)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List known contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := appCtx.Contacts.List()
			if err != nil {
				return err
			}
			for _, c := range cs {
				fmt.Printf("%s\t%s\n", c.PeerID, hex.EncodeToString(c.Exchange.Slice()))
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
