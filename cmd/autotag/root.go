package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/bemani-autotag/internal/config"
	"github.com/handiism/bemani-autotag/internal/organize"
)

type rootOptions struct {
	configPath string
	dryRun     bool
	verbose    bool
	summary    string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "autotag [folder ...]",
		Short: "Write tag sidecars, notes and playlists for ripped game soundtracks",
		Long: `autotag inspects each album folder, picks the playable file of every
"ARTIST - TITLE" track folder, and writes:

  <track folder>/!tags.m3u   album, artist, title and track number tags
  note.txt                   game, publisher and playback notes
  <album>.m3u8               the album playlist

Arguments that are not directories are skipped. Folder names starting
with "-" go after "--", as in: autotag -- -Foo`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Inspect folders without writing any file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	flags.StringVar(&opts.summary, "summary", "auto", "Print a summary table: auto, always or never")

	return rootCmd
}

func runOrganize(cmd *cobra.Command, args []string, opts rootOptions) error {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}

	if opts.dryRun {
		settings.DryRun = true
	}
	if opts.verbose {
		settings.Verbose = true
	}

	out := cmd.OutOrStdout()
	printer := newProgressPrinter(out, settings.Verbose)
	manager := organize.NewManager(settings, printer.Print)

	outcomes, err := manager.Organize(cmd.Context(), args)
	if shouldPrintSummary(opts.summary, out) && len(outcomes) > 0 {
		printer.Summary(renderSummary(outcomes, settings.DryRun))
	}
	return err
}
