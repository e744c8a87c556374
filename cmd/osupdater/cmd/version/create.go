package version

import (
	"os"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/domain/version"
)

var (
	appName      string
	versionName  string
	changelog    string
	downloadLink string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Опубликовать новую версию",
	Long: `Публикация новой версии приложения.

Пара приложение+версия должна быть уникальной. Незаполненные флаги
запрашиваются интерактивно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		p := types.NewPrompter(os.Stdin, os.Stderr)

		req := version.CreateRequest{
			AppName:      appName,
			Version:      versionName,
			Changelog:    changelog,
			DownloadLink: downloadLink,
		}

		if req.AppName == "" {
			if req.AppName, err = p.Line("Приложение", app.Config().DefaultAppName); err != nil {
				return err
			}
		}
		if req.Version == "" {
			if req.Version, err = p.Line("Версия", ""); err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("changelog") {
			if req.Changelog, err = p.Line("Список изменений", ""); err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("link") {
			if req.DownloadLink, err = p.Line("Ссылка для загрузки", ""); err != nil {
				return err
			}
		}

		if err := app.Versions.Create(cmd.Context(), req); err != nil {
			return types.Reported(err)
		}

		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, app.Versions.Items())
		}
		return printTable(os.Stdout, app.Versions.Items())
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&appName, "app", "a", "", "имя приложения")
	CreateCmd.Flags().StringVarP(&versionName, "version", "v", "", "номер версии")
	CreateCmd.Flags().StringVarP(&changelog, "changelog", "c", "", "список изменений")
	CreateCmd.Flags().StringVarP(&downloadLink, "link", "l", "", "ссылка для загрузки")
}
