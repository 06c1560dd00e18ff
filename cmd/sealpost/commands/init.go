package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <client_id>",
		Short: "Generate identity keys and store them securely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, fp, err := appCtx.Identity.Generate(passphrase, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Identity created for %s.\n", id.ID)
			fmt.Printf("Fingerprint:         %s\n", fp)
			fmt.Printf("Signing public key:  %s\n", hex.EncodeToString(id.EdPub.Slice()))
			fmt.Printf("Exchange public key: %s\n", hex.EncodeToString(id.XPub.Slice()))
			fmt.Println("Share the exchange public key with your peers out of band.")
			return nil
		},
	}
}
