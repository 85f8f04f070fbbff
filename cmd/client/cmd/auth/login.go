package auth

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var (
	employeeID string
	name       string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти по табельному номеру и имени",
	Long: `Вход сотрудника. Табельный номер - 8 цифр, начинается с 2.
Имя - 2-5 слогов хангыля.

Если сервер недоступен, вход выполняется локально.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		if employeeID == "" {
			if employeeID, err = prompt(in, out, "Табельный номер: "); err != nil {
				return err
			}
		}
		if name == "" {
			if name, err = prompt(in, out, "Имя: "); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		state, err := app.Login(ctx, employeeID, name)
		if err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		if state.IsNewUser {
			fmt.Fprintf(out, "✅ Добро пожаловать, %s!\n", state.Name)
		} else {
			fmt.Fprintf(out, "✅ С возвращением, %s!\n", state.Name)
		}
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&employeeID, "employee-id", "e", "", "табельный номер")
	LoginCmd.Flags().StringVarP(&name, "name", "n", "", "имя")
}
