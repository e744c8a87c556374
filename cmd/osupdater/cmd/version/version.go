package version

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"osupdater/internal/domain/version"
)

// VersionCmd - родительская команда для работы с версиями приложений
var VersionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"versions"},
	Short:   "Управление версиями приложений",
	Long:    `Просмотр, публикация и редактирование версий приложений.`,
}

func printTable(w io.Writer, items []version.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tПРИЛОЖЕНИЕ\tВЕРСИЯ\tИЗМЕНЕНИЯ\tЗАГРУЗКА\tСОЗДАНА")
	for _, v := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.AppName,
			v.Version,
			truncate(v.Changelog, 40),
			v.DownloadLink,
			v.CreatedAt.Local().Format("02.01.2006 15:04"),
		)
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
