package user

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/app/console"
	"osupdater/internal/domain/user"
)

var (
	addUsername string
	addRole     string
	assumeYes   bool
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить пользователя",
	Long: `Создание пользователя с выбранной ролью.

Доступные роли: ` + strings.Join(user.Roles, ", "),
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		p := types.NewPrompter(os.Stdin, os.Stderr)

		req := user.RegisterRequest{Username: addUsername, Role: addRole}
		if req.Username == "" {
			if req.Username, err = p.Line("Имя пользователя", ""); err != nil {
				return err
			}
		}
		if req.Password, err = p.Password("Пароль"); err != nil {
			return err
		}
		if req.Role == "" {
			if req.Role, err = p.Line("Роль ("+strings.Join(user.Roles, "/")+")", ""); err != nil {
				return err
			}
		}

		if err := app.Users.Add(cmd.Context(), req); err != nil {
			return types.Reported(err)
		}
		return show(cmd, app)
	},
}

var SetRoleCmd = &cobra.Command{
	Use:   "set-role <id> <role>",
	Short: "Изменить роль пользователя",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Users.SetRole(cmd.Context(), args[0], args[1]); err != nil {
			return types.Reported(err)
		}
		return show(cmd, app)
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить пользователя",
	Long:  `Удаление пользователя. Перед удалением запрашивается подтверждение.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		confirm := types.NewPrompter(os.Stdin, os.Stderr).Confirm
		if assumeYes {
			confirm = func(string) bool { return true }
		}

		err = app.Users.Delete(cmd.Context(), args[0], confirm)
		if errors.Is(err, console.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Удаление отменено")
			return nil
		}
		if err != nil {
			return types.Reported(err)
		}
		return show(cmd, app)
	},
}

func show(cmd *cobra.Command, app *console.App) error {
	if types.JSON(cmd.Context()) {
		return types.PrintJSON(os.Stdout, app.Users.Items())
	}
	return printTable(os.Stdout, app.Users.Items())
}

func init() {
	AddCmd.Flags().StringVarP(&addUsername, "username", "u", "", "имя пользователя")
	AddCmd.Flags().StringVarP(&addRole, "role", "r", "", "роль ("+strings.Join(user.Roles, ", ")+")")
	DeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "не спрашивать подтверждение")
}
