package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fruit-balance/audio"
	"github.com/lixenwraith/fruit-balance/locale"
)

func soundCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "sound [on|off|status]",
		Short:     "Show or change the sound effects preference",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			action := "status"
			if len(args) == 1 {
				action = args[0]
			}

			ctx := cmd.Context()
			switch action {
			case "on", "off":
				if err := audio.SaveEnabled(ctx, store, action == "on"); err != nil {
					return fmt.Errorf("save preference: %w", err)
				}
			}

			state := "off"
			if audio.LoadEnabled(ctx, store) {
				state = "on"
			}
			fmt.Fprintln(cmd.OutOrStdout(), printer.Sprintf(locale.KeySoundStatus, state))
			return nil
		},
	}
}
