package video

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var CatalogCmd = &cobra.Command{
	Use:   "catalog [categoryId]",
	Short: "Разделы обучения или видео раздела",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			categories, online := app.Categories(cmd.Context())
			if !online {
				fmt.Fprintln(out, "⚠️  Сервер недоступен, показан встроенный каталог")
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tВИДЕО")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Title, c.VideoCount)
			}
			return w.Flush()
		}

		videos, online, err := app.Videos(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !online {
			fmt.Fprintln(out, "⚠️  Сервер недоступен, показан встроенный каталог")
		}

		s, err := app.Syncer()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tДЛИТЕЛЬНОСТЬ\tПРОГРЕСС")
		for _, v := range videos {
			pct := s.Context().Cache.Percentage(v.ID, v.Duration)
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\n", v.ID, v.Title, formatDuration(v.Duration), pct)
		}
		return w.Flush()
	},
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
