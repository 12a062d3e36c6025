package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/bemani-autotag/internal/config"
	"github.com/handiism/bemani-autotag/internal/tui"
)

func main() {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "autotag-tui",
		Short:         "Interactive front end for autotag",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.DefaultSettings()
			if configFlag != "" {
				var err error
				settings, err = config.Load(configFlag)
				if err != nil {
					return err
				}
			}
			return tui.Run(settings)
		},
	}
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
