package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти",
	Long:  `Завершает сессию. Локальный прогресс сохраняется и будет доступен при следующем входе.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Вы вышли из системы")
		return nil
	},
}
