// Package cmd implements the command-line interface for bilihot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/bilihot/bilihot/color"
	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/icon"
	"github.com/bilihot/bilihot/key"
	"github.com/bilihot/bilihot/log"
	"github.com/bilihot/bilihot/network"
	"github.com/bilihot/bilihot/open"
	"github.com/bilihot/bilihot/render"
	"github.com/bilihot/bilihot/style"
	"github.com/bilihot/bilihot/util"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnavailable = 2
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("source", "s", "", "Feed to read: auto, ranking or popular")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return bilibili.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.Flags().Lookup("source")))

	rootCmd.Flags().StringP("json", "j", "", "Also write the video record as JSON to `PATH`")
	rootCmd.Flags().BoolP("open", "o", false, "Open the video page in the default browser")
}

// rootCmd fetches and prints the hottest video.
var rootCmd = &cobra.Command{
	Use:   constant.Bilihot,
	Short: "Show the hottest Bilibili video of the day",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.BiliPink).Render("    - Show the hottest Bilibili video of the day"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		mode, err := bilibili.ParseMode(viper.GetString(key.DefaultSources))
		handleErr(err)

		client := CheckDependencies()

		code := run(context.Background(), bilibili.NewClient(client), runOptions{
			Mode:     mode,
			JSONPath: lo.Must(cmd.Flags().GetString("json")),
			Open:     lo.Must(cmd.Flags().GetBool("open")),
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
			Styled:   viper.GetBool(key.CliColored) && util.IsTerminal(os.Stdout),
		})
		if code != exitOK {
			os.Exit(code)
		}
	},
}

// runOptions carries everything a single fetch-and-print needs.
type runOptions struct {
	Mode     bilibili.Mode
	JSONPath string
	// Open launches the video page once the summary is printed.
	Open   bool
	Stdout io.Writer
	Stderr io.Writer
	Styled bool
}

// run picks a video, prints it and optionally exports it. It returns the process exit code.
func run(ctx context.Context, fetcher bilibili.Fetcher, opts runOptions) int {
	erase := util.PrintErasable(opts.Stderr, fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), opts.Mode))

	selector := bilibili.Selector{
		Fetcher: fetcher,
		OnFallback: func(cause error) {
			erase()
			if cause == nil {
				warn(opts.Stderr, "ranking source returned no videos; falling back to popular")
				return
			}
			warn(opts.Stderr, fmt.Sprintf("ranking source failed (%v); falling back to popular", cause))
		},
	}

	outcome := selector.Pick(ctx, opts.Mode)
	erase()

	printer := render.Printer{Out: opts.Stdout, Styled: opts.Styled}

	switch outcome.Status {
	case bilibili.Found:
	case bilibili.NotFound:
		log.Warnf("no video found (source %s)", opts.Mode)
		_ = printer.NotFound()
		return exitFailure
	default:
		report(opts.Stderr, outcome.Err)
		return exitCode(outcome.Err)
	}

	if err := printer.Summary(outcome.Video); err != nil {
		report(opts.Stderr, err)
		return exitFailure
	}

	if opts.JSONPath != "" {
		if err := render.WriteJSON(opts.JSONPath, outcome.Video); err != nil {
			report(opts.Stderr, err)
			return exitFailure
		}
		_ = printer.Saved(opts.JSONPath)
	}

	if opts.Open && outcome.Video.URL != "" {
		if err := open.Start(outcome.Video.URL); err != nil {
			log.Warnf("open %s: %v", outcome.Video.URL, err)
			warn(opts.Stderr, err.Error())
		}
	}

	return exitOK
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
}

// exitCode maps an error onto the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, network.ErrClientUnavailable):
		return exitUnavailable
	default:
		return exitFailure
	}
}

func report(w io.Writer, err error) {
	log.Error(err)
	_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
}

func warn(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), msg)
}

func handleErr(err error) {
	if err != nil {
		report(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
