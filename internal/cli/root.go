// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/nixq/pkg/core"
	"github.com/arc-language/nixq/pkg/nixsearch"
)

var (
	cfgFile    string
	debug      bool
	arch       string
	numResults int
	page       int
	channel    string
	plain      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nixq [flags] QUERY",
	Short: "Search NixOS packages",
	Long: `nixq - NixOS package search

Queries the search.nixos.org package index and prints matching
packages as a table, or as plain attribute names for shell pipelines.`,
	Version:       "0.1.0",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nixq/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Search flags
	rootCmd.Flags().StringVarP(&arch, "arch", "a", "", "platform filter, e.g. x86_64-linux (default: current system)")
	rootCmd.Flags().IntVarP(&numResults, "num-results", "n", 0, fmt.Sprintf("results per page, 1-%d (default %d)", nixsearch.MaxPageSize, core.DefaultNumResults))
	rootCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	rootCmd.Flags().StringVarP(&channel, "channel", "c", "", fmt.Sprintf("NixOS channel to search (default %q)", core.DefaultChannel))
	rootCmd.Flags().BoolVar(&plain, "plain", false, "output package names only, one per line")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Usage()
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return &UsageError{Err: fmt.Errorf("expected exactly one search term, got %d", len(args))}
	}

	query, err := makeQuery(args[0], searchOptions{
		Arch:       arch,
		ArchSet:    cmd.Flags().Changed("arch"),
		NumResults: numResults,
		NumSet:     cmd.Flags().Changed("num-results"),
		Page:       page,
		Channel:    channel,
	}, config)
	if err != nil {
		cmd.Usage()
		return &UsageError{Err: err}
	}

	clientCfg := nixsearch.Config{
		BackendURL: config.BackendURL,
		Debug:      config.Debug,
	}
	if config.Debug {
		clientCfg.Logger = log.New(cmd.ErrOrStderr(), "[nixq] ", log.LstdFlags)
	}

	client, err := nixsearch.NewClientWithConfig(clientCfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout())
	defer cancel()

	result, err := client.Search(ctx, query)
	if err != nil {
		return err
	}

	if plain {
		renderPlain(cmd.OutOrStdout(), result)
	} else {
		renderTable(cmd.OutOrStdout(), result, query.Platform)
	}

	return nil
}

// searchOptions carries the parsed flag values into query construction
type searchOptions struct {
	Arch       string
	ArchSet    bool // --arch given explicitly (possibly empty to disable the filter)
	NumResults int
	NumSet     bool
	Page       int
	Channel    string
}

// makeQuery validates flags against the configuration and builds the
// search query. Validation failures here happen before any network I/O.
func makeQuery(term string, opts searchOptions, cfg *core.Config) (nixsearch.Query, error) {
	size := cfg.NumResults
	if opts.NumSet {
		size = opts.NumResults
	}
	if size < 1 || size > nixsearch.MaxPageSize {
		return nixsearch.Query{}, fmt.Errorf("num-results must be between 1 and %d, got %d", nixsearch.MaxPageSize, size)
	}

	if opts.Page < 1 {
		return nixsearch.Query{}, fmt.Errorf("page must be 1 or greater, got %d", opts.Page)
	}

	ch := opts.Channel
	if ch == "" {
		ch = cfg.Channel
	}

	platform := opts.Arch
	if !opts.ArchSet {
		// Unknown systems search unfiltered rather than failing.
		if p, err := nixsearch.DetectPlatform(); err == nil {
			platform = p.String()
		}
	}

	return nixsearch.Query{
		Term:     term,
		Channel:  ch,
		Platform: platform,
		Page:     opts.Page,
		PageSize: size,
	}, nil
}
