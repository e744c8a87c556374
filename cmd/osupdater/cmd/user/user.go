package user

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"osupdater/internal/domain/user"
)

// UserCmd - родительская команда для управления пользователями
var UserCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"users"},
	Short:   "Управление пользователями",
	Long:    `Просмотр, добавление, смена роли и удаление пользователей.`,
}

func printTable(w io.Writer, items []user.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tИМЯ\tРОЛЬ")
	for _, u := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.Role)
	}
	return tw.Flush()
}
