package commands

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// browserSearcher opens web searches in the user's default browser.
type browserSearcher struct{}

func (browserSearcher) Search(_ context.Context, query string) error {
	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", searchURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", searchURL)
	default:
		cmd = exec.Command("xdg-open", searchURL)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
