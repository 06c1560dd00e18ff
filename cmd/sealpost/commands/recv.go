package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recv: drain and open queued messages.
func recvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recv",
		Short: "Drain and open your queued messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if appCtx.Relay == nil {
				return fmt.Errorf("no server configured. use --server")
			}
			msgs, dropped, err := appCtx.Messages.Receive(cmd.Context(), passphrase)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s\n", m.From, string(m.Plaintext))
			}
			if dropped > 0 {
				fmt.Printf("%d message(s) failed verification and were discarded\n", dropped)
			}
			return nil
		},
	}
}
