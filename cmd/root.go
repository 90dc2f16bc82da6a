// Package cmd defines the CLI commands for the extraction pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kgcrawl",
		Short: "Extracts football entities and relationships for the knowledge graph.",
		Long: `kgcrawl walks configured leagues, their teams, and their squads on
the source website and appends normalized entity and relationship rows
to CSV sinks consumed by the graph loader. Crawl state is persisted per
completed entity, so an interrupted run resumes at the next unprocessed
team or player.`,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults apply when omitted)")
	cmd.AddCommand(newCrawlCmd())
	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
