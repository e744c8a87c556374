package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список версий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Versions.Load(cmd.Context()); err != nil {
			return types.Reported(err)
		}

		items := app.Versions.Items()
		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, items)
		}

		if len(items) == 0 {
			fmt.Println("Версий пока нет")
			return nil
		}
		return printTable(os.Stdout, items)
	},
}
