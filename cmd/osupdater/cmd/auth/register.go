package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/domain/user"
)

var registerUsername string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать учетную запись",
	Long: `Публичная регистрация на бэкенде с ролью user.

Вход для регистрации не нужен. После регистрации войдите: osupdater login`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		p := types.NewPrompter(os.Stdin, os.Stderr)

		username := registerUsername
		if username == "" {
			if username, err = p.Line("Имя пользователя", ""); err != nil {
				return err
			}
		}

		password, err := p.Password("Пароль")
		if err != nil {
			return err
		}
		confirm, err := p.Password("Повторите пароль")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("пароли не совпадают")
		}

		err = app.Register(cmd.Context(), user.RegisterRequest{
			Username: username,
			Password: password,
			Role:     user.RoleUser,
		})
		return types.Reported(err)
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "имя пользователя")
}
