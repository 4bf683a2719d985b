package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fruit-balance/locale"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the fruit and their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			nameWidth := 0
			for _, it := range items.Items() {
				nameWidth = max(nameWidth, runewidth.StringWidth(it.DisplayName(printer.Locale())))
			}
			for i, it := range items.Items() {
				name := runewidth.FillRight(it.DisplayName(printer.Locale()), nameWidth)
				icon := runewidth.FillRight(it.Icon, 2)
				fmt.Fprintf(out, "%d  %s  %s  %s\n", i+1, icon, name, printer.Sprintf(locale.KeyWeight, it.Weight))
			}
			return nil
		},
	}
}
