package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
)

var (
	planSubject string
	planExam    string
	planHours   float64
	planTopics  []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage study plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a study plan for an exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planSubject == "" || planExam == "" {
			return errors.New("--subject and --exam are required")
		}
		if planHours <= 0 {
			return errors.New("--hours must be positive")
		}

		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		plan, msg, err := edu.CreatePlan(cmd.Context(), planSubject, planExam, planHours, planTopics)
		var rej *education.RejectError
		if errors.As(err, &rej) {
			return errors.New(rej.Reason)
		}
		if err != nil {
			return err
		}
		fmt.Println(msg)
		fmt.Println(assistant.FormatPlanDisplay(plan))
		return nil
	},
}

var planTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		tasks, err := edu.TodaySessions(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(assistant.FormatTodayDisplay(tasks))
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a study plan's schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		plan, err := edu.Plan(cmd.Context(), id)
		if errors.Is(err, education.ErrNotFound) {
			return fmt.Errorf("plan %d not found", id)
		}
		if err != nil {
			return err
		}
		fmt.Println(assistant.FormatPlanDisplay(plan))
		return nil
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done <plan-id> <day>",
	Short: "Mark a study session as done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day %q", args[1])
		}

		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		msg, err := edu.MarkSessionComplete(cmd.Context(), planID, day)
		if errors.Is(err, education.ErrNotFound) {
			return fmt.Errorf("plan %d day %d not found", planID, day)
		}
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	planCreateCmd.Flags().StringVarP(&planSubject, "subject", "s", "", "exam subject")
	planCreateCmd.Flags().StringVarP(&planExam, "exam", "e", "", `exam date ("next friday", "12/15", ...)`)
	planCreateCmd.Flags().Float64Var(&planHours, "hours", 2, "study hours per day")
	planCreateCmd.Flags().StringSliceVarP(&planTopics, "topics", "t", nil, "topics to cover (comma separated)")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planTodayCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planDoneCmd)
	rootCmd.AddCommand(planCmd)
}
