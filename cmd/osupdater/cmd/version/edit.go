package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/domain/version"
)

var (
	editApp       string
	editVersion   string
	editChangelog string
	editLink      string
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить версию",
	Long: `Редактирование опубликованной версии.

Форма заполняется текущими значениями. Поля, не заданные флагами,
запрашиваются интерактивно; Enter оставляет значение без изменений.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		id := args[0]
		if err := app.Versions.Load(cmd.Context()); err != nil {
			return types.Reported(err)
		}

		current, ok := app.Versions.Find(id)
		if !ok {
			return fmt.Errorf("версия %s не найдена", id)
		}

		form := version.EditForm(current)
		p := types.NewPrompter(os.Stdin, os.Stderr)
		flags := cmd.Flags()

		fields := []struct {
			flag  string
			label string
			value string
			dst   *string
		}{
			{flag: "app", label: "Приложение", value: editApp, dst: &form.AppName},
			{flag: "version", label: "Версия", value: editVersion, dst: &form.Version},
			{flag: "changelog", label: "Список изменений", value: editChangelog, dst: &form.Changelog},
			{flag: "link", label: "Ссылка для загрузки", value: editLink, dst: &form.DownloadLink},
		}

		for _, f := range fields {
			if flags.Changed(f.flag) {
				*f.dst = f.value
				continue
			}
			if *f.dst, err = p.Line(f.label, *f.dst); err != nil {
				return err
			}
		}

		if err := app.Versions.Update(cmd.Context(), id, form); err != nil {
			return types.Reported(err)
		}

		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, app.Versions.Items())
		}
		return printTable(os.Stdout, app.Versions.Items())
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editApp, "app", "a", "", "имя приложения")
	EditCmd.Flags().StringVarP(&editVersion, "version", "v", "", "номер версии")
	EditCmd.Flags().StringVarP(&editChangelog, "changelog", "c", "", "список изменений")
	EditCmd.Flags().StringVarP(&editLink, "link", "l", "", "ссылка для загрузки")
}
