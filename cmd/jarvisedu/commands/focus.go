package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/focus"
)

var focusMinutes int

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a focus-mode timer",
	Long: `Runs a focus session in the foreground, printing the remaining
time each minute. Interrupt with Ctrl-C to stop early.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := focusMinutes
		if !cmd.Flags().Changed("minutes") {
			if cfg, err := getConfig(); err == nil && cfg.Focus.SessionMinutes > 0 {
				minutes = cfg.Focus.SessionMinutes
			}
		}
		timer := focus.New()
		if err := timer.Start(minutes); err != nil {
			return err
		}
		fmt.Printf("Focus mode started for %d minutes.\n", minutes)

		tick := time.NewTicker(time.Minute)
		defer tick.Stop()
		for {
			select {
			case <-cmd.Context().Done():
				elapsed, err := timer.Stop()
				if err != nil {
					return err
				}
				fmt.Printf("\nFocus mode stopped after %d minutes.\n", int(elapsed.Minutes()))
				return nil
			case <-tick.C:
				left := timer.Remaining()
				if left == 0 {
					fmt.Println("Focus session complete. Well done!")
					_, err := timer.Stop()
					return err
				}
				fmt.Printf("%d minutes remaining.\n", int(left.Round(time.Minute).Minutes()))
			}
		}
	},
}

func init() {
	focusCmd.Flags().IntVarP(&focusMinutes, "minutes", "m", 25, "session length in minutes")
	rootCmd.AddCommand(focusCmd)
}
