package cmd

import (
	"osupdater/cmd/osupdater/cmd/analytics"
	"osupdater/cmd/osupdater/cmd/auth"
	"osupdater/cmd/osupdater/cmd/user"
	"osupdater/cmd/osupdater/cmd/version"
)

func init() {
	// Сессия
	rootCmd.AddCommand(auth.LoginCmd)
	rootCmd.AddCommand(auth.LogoutCmd)
	rootCmd.AddCommand(auth.StatusCmd)
	rootCmd.AddCommand(auth.RegisterCmd)

	// Версии приложений
	rootCmd.AddCommand(version.VersionCmd)
	version.VersionCmd.AddCommand(version.ListCmd)
	version.VersionCmd.AddCommand(version.CreateCmd)
	version.VersionCmd.AddCommand(version.EditCmd)

	// Пользователи
	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.ListCmd)
	user.UserCmd.AddCommand(user.AddCmd)
	user.UserCmd.AddCommand(user.SetRoleCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)

	rootCmd.AddCommand(analytics.AnalyticsCmd)
	rootCmd.AddCommand(serveCmd)
}
