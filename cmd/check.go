package cmd

import (
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/bilihot/bilihot/config"
	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/icon"
	"github.com/bilihot/bilihot/key"
	"github.com/bilihot/bilihot/log"
	"github.com/bilihot/bilihot/network"
	"github.com/bilihot/bilihot/style"
	"github.com/charmbracelet/lipgloss"
)

// CheckDependencies builds the HTTP client for this run.
// The process exits with code 2 when it cannot be built.
func CheckDependencies() *http.Client {
	client, err := network.New(network.OptionsFromConfig())
	if err != nil {
		log.Error(err)
		printUnavailableClientError(err)
		os.Exit(exitUnavailable)
	}
	return client
}

// clearProxyHint returns the shell command that unsets the proxy override.
func clearProxyHint(goos string) string {
	env := (&config.Field{Key: key.NetProxy}).Env()
	switch goos {
	case constant.Windows:
		return "set " + env + "="
	default:
		return "unset " + env
	}
}

func printUnavailableClientError(err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: HTTP client unavailable", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(err.Error())

	suggestion := fmt.Sprintf(
		"\n\nCheck the %s setting, or clear it with:\n  %s\n  %s",
		style.Bold(key.NetProxy),
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.Bilihot+" config reset --key "+key.NetProxy),
		style.New().Foreground(style.AccentColor).Bold(true).Render(clearProxyHint(runtime.GOOS)),
	)

	_, _ = fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
