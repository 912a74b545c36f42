package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
)

var listFilter string

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "Manage assignments",
}

var assignmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		filter := education.Filter(listFilter)
		switch filter {
		case education.FilterAll, education.FilterToday,
			education.FilterThisWeek, education.FilterUrgent:
		default:
			return fmt.Errorf("unknown filter %q (all, today, this_week, urgent)", listFilter)
		}

		list, err := edu.Assignments(cmd.Context(), filter)
		if err != nil {
			return err
		}
		fmt.Println(assistant.FormatAssignmentsDisplay(list, edu.Now()))
		return nil
	},
}

var assignmentsAddCmd = &cobra.Command{
	Use:   "add <course> <description> <due>",
	Short: "Add an assignment",
	Long: `Adds an assignment. The due date takes the same natural forms
the assistant understands: "friday", "tomorrow", "next week", "12/25".`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		_, msg, err := edu.AddAssignment(cmd.Context(), args[0], args[1], args[2])
		var rej *education.RejectError
		if errors.As(err, &rej) {
			return errors.New(rej.Reason)
		}
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var assignmentsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an assignment as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid assignment id %q", args[0])
		}

		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		_, msg, err := edu.CompleteAssignment(cmd.Context(), id)
		if errors.Is(err, education.ErrNotFound) {
			return fmt.Errorf("assignment %d not found", id)
		}
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	assignmentsListCmd.Flags().StringVarP(&listFilter, "filter", "f", "all",
		"due-date filter: all, today, this_week, urgent")

	assignmentsCmd.AddCommand(assignmentsListCmd)
	assignmentsCmd.AddCommand(assignmentsAddCmd)
	assignmentsCmd.AddCommand(assignmentsCompleteCmd)
	rootCmd.AddCommand(assignmentsCmd)
}
