package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Текущий пользователь и состояние сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		identity, state, ok, err := app.Status()
		if err != nil {
			return err
		}

		if ok {
			fmt.Fprintf(out, "Пользователь: %s (%s)\n", state.Name, state.EmployeeID)
			mark := "нет"
			if state.Attendance {
				mark = "да"
			}
			fmt.Fprintf(out, "Присутствие сегодня: %s\n", mark)
		} else {
			fmt.Fprintf(out, "Вход не выполнен, гость %s\n", identity.UserID)
		}

		if avg, err := app.AverageProgress(cmd.Context()); err == nil {
			fmt.Fprintf(out, "Средний прогресс: %.1f%%\n", avg)
		}

		health, err := app.CheckConnection(cmd.Context())
		if err != nil {
			fmt.Fprintf(out, "Сервер: недоступен (%v)\n", err)
			return nil
		}
		fmt.Fprintf(out, "Сервер: %s, хранилище %s\n", health.Status, health.Storage)
		return nil
	},
}
