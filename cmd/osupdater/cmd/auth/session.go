package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/session"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из консоли",
	Long:  `Удаляет локальную сессию. Бэкенд о выходе не уведомляется.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}
		return app.Logout(cmd.Context())
	},
}

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if types.JSON(cmd.Context()) {
			return types.PrintJSON(os.Stdout, app.Status())
		}

		sess := app.Session()
		if sess.State() != session.LoggedIn {
			fmt.Println("Вход не выполнен")
			fmt.Println("Доступно: osupdater login, osupdater register")
			return nil
		}

		expiresAt := sess.ExpiresAt()
		fmt.Printf("Вход выполнен\n")
		fmt.Printf("Роль:       %s\n", sess.Role())
		fmt.Printf("Вход:       %s\n", sess.LoginTime().Local().Format("02.01.2006 15:04:05"))
		fmt.Printf("Истекает:   %s\n", expiresAt.Local().Format("02.01.2006 15:04:05"))
		fmt.Printf("Осталось:   %s из %s\n", sess.Info().Remaining(time.Now()).Round(time.Second), sess.MaxDuration())
		fmt.Println()
		fmt.Println("Разделы: version (Manage Apps), user (User Management), analytics, logout")
		return nil
	},
}
