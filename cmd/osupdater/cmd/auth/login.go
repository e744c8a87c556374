package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/domain/user"
)

var loginUsername string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в консоль",
	Long: `Аутентификация администратора на бэкенде сервиса обновлений.

Токен и роль сохраняются локально. Сессия живет не дольше 15 минут
с момента входа, после чего нужно войти снова.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		p := types.NewPrompter(os.Stdin, os.Stderr)

		username := loginUsername
		if username == "" {
			if username, err = p.Line("Имя пользователя", ""); err != nil {
				return err
			}
		}

		password, err := p.Password("Пароль")
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), user.LoginRequest{Username: username, Password: password}); err != nil {
			return types.Reported(err)
		}

		info := app.Status()
		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, info)
		}
		fmt.Printf("Роль: %s, сессия до %s\n", info.Role, info.ExpiresAt.Local().Format("15:04:05"))
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "имя пользователя")
}
