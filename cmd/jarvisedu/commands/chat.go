package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive assistant session",
	Long: `Starts a read-eval loop against the assistant. Commands and
questions are classified and executed; anything else goes to the chat
model. Type "exit" or "quit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		edu, closeStore, err := openService()
		if err != nil {
			return err
		}
		defer closeStore()

		a, err := newAssistant(edu)
		if err != nil {
			return err
		}

		sessionID := uuid.NewString()
		fmt.Println("JARVIS education assistant. Type 'exit' to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			resp, err := a.HandleMessage(cmd.Context(), sessionID, line)
			switch {
			case errors.Is(err, assistant.ErrChatUnavailable):
				fmt.Println(resp.Text)
				continue
			case err != nil:
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				if resp != nil && resp.Text != "" {
					fmt.Println(resp.Text)
				}
				continue
			}

			fmt.Println(resp.Text)
			if resp.Display != "" {
				fmt.Println(resp.Display)
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
