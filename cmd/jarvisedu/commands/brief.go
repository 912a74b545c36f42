package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Show the daily brief",
	RunE: func(cmd *cobra.Command, args []string) error {
		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		brief, err := assistant.BuildDailyBrief(cmd.Context(), edu)
		if err != nil {
			return err
		}
		fmt.Printf("Classes with open work: %d\n", brief.Classes)
		fmt.Printf("Due within 3 days:      %d\n", brief.DueSoon)
		fmt.Printf("Study hours today:      %g\n", brief.StudyHours)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(briefCmd)
}
