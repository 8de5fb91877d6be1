package render

import (
	"fmt"
	"io"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/bilihot/bilihot/style"
)

// Printer writes the human-readable summary.
type Printer struct {
	Out io.Writer
	// Styled enables lipgloss decoration; leave false for pipes and files.
	Styled bool
}

// Summary prints title, author, URL and the five headline counters.
func (p *Printer) Summary(v bilibili.Video) error {
	heading, label := style.Identity, style.Identity
	if p.Styled {
		heading, label = style.Heading, style.Label
	}

	_, err := fmt.Fprintf(p.Out,
		"%s\n%s  %s\n%s %s\n%s    %s\n%s  views %s, likes %s, coins %s, favorites %s, shares %s\n",
		heading("Hottest video today"),
		label("- Title:"), v.Title,
		label("- Author:"), v.Author,
		label("- URL:"), v.URL,
		label("- Stats:"),
		Abbreviate(v.ViewCount),
		Abbreviate(v.LikeCount),
		Abbreviate(v.CoinCount),
		Abbreviate(v.FavoriteCount),
		Abbreviate(v.ShareCount),
	)
	return err
}

// NotFound prints the message for an empty feed.
func (p *Printer) NotFound() error {
	_, err := fmt.Fprintln(p.Out, "No video found.")
	return err
}

// Saved confirms a JSON export.
func (p *Printer) Saved(path string) error {
	_, err := fmt.Fprintf(p.Out, "Saved JSON to %s\n", path)
	return err
}
