package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sealpost/internal/app"
)

var (
	home       string
	passphrase string
	serverURL  string

	appCtx *app.Wire
)

// Execute runs the sealpost CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "sealpost",
		Short: "End-to-end encrypted store-and-forward messaging CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sealpost")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.NewWire(app.Config{Home: home, ServerURL: serverURL})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.sealpost)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(initCmd(), fingerprintCmd(), registerCmd(), contactCmd(), sendCmd(), recvCmd(), peersCmd())
	return root.Execute()
}
