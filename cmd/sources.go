package cmd

import (
	"os"
	"strings"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/bilihot/bilihot/color"
	"github.com/bilihot/bilihot/key"
	"github.com/bilihot/bilihot/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd groups commands that describe the upstream feeds.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the upstream feeds a video can be picked from",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only source names")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd prints every source with the requests it performs.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display every source and the feeds it queries",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, name := range bilibili.ModeNames() {
				cmd.Println(name)
			}
			return
		}

		headerStyle := style.New().Foreground(color.HiCyan).Bold(true).Render
		current := strings.ToLower(strings.TrimSpace(viper.GetString(key.DefaultSources)))

		for i, mode := range bilibili.Modes() {
			header := mode.String()
			if mode.String() == current {
				header += style.Faint(" (default)")
			}
			cmd.Println(headerStyle(header))

			for _, feed := range mode.Feeds() {
				cmd.Printf("  %s %s\n", style.Fg(color.Yellow)("GET"), feed.URL())
				cmd.Printf("      %s %s\n", style.Faint("list at"), strings.Join(feed.ListPath, "."))
			}

			if i < len(bilibili.Modes())-1 {
				cmd.Println()
			}
		}
	},
}
