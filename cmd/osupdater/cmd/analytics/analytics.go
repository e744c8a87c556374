package analytics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/app/console"
)

const barWidth = 40

var (
	appName     string
	versionName string
)

var AnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Статистика установок",
	Long: `Установки приложения по дням и версиям.

Без --app показывается приложение по умолчанию, без --version - все версии.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Analytics.Load(cmd.Context(), appName); err != nil {
			return types.Reported(err)
		}
		app.Analytics.Select(versionName)

		view := app.Analytics.View()
		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, view)
		}
		return render(os.Stdout, view)
	},
}

// render рисует горизонтальную гистограмму установок
func render(w io.Writer, view console.AnalyticsView) error {
	fmt.Fprintf(w, "Приложение: %s\n", view.AppName)
	fmt.Fprintf(w, "Версии: %s\n", strings.Join(view.Options, ", "))
	fmt.Fprintf(w, "Фильтр: %s\n\n", view.Selected)

	if len(view.Bars) == 0 {
		fmt.Fprintln(w, "Установок нет")
		return nil
	}

	bar := color.New(color.FgCyan)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range view.Bars {
		fmt.Fprintf(tw, "%s\t%s\t%s %d\n", b.Label, b.Version, bar.Sprint(strings.Repeat("█", scale(b.Count, view.Max))), b.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nВсего установок: %d\n", view.Total)
	return nil
}

func scale(count, max int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	n := count * barWidth / max
	if n == 0 {
		n = 1
	}
	return n
}

func init() {
	AnalyticsCmd.Flags().StringVarP(&appName, "app", "a", "", "имя приложения")
	AnalyticsCmd.Flags().StringVarP(&versionName, "version", "v", "", "версия для фильтра")
}
