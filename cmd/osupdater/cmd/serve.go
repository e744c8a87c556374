package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/app/console/web"
)

var webAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить веб-консоль",
	Long: `Запускает локальную веб-версию консоли под базовым путем
/os-updater-dashboard. Работает до Ctrl+C.`,
	Annotations: map[string]string{"notifier": webNotifier},
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		srv, err := web.New(app, flash, log)
		if err != nil {
			return fmt.Errorf("ошибка инициализации веб-консоли: %w", err)
		}

		addr := app.Config().WebAddress
		if webAddress != "" {
			addr = webAddress
		}
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&webAddress, "addr", "", "адрес веб-консоли")
}
