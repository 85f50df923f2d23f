package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anyulbade/creator-fee-engine/internal/config"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

var Version = "dev"

type rootOptions struct {
	ratesFile string
	asJSON    bool
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "feectl",
		Short:         "Inspect creator fee rates, quotes and minimum prices",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ratesFile, "rates", os.Getenv("RATES_FILE"), "YAML rate table override")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(quoteCmd(opts))
	rootCmd.AddCommand(breakdownCmd(opts))
	rootCmd.AddCommand(minimumCmd(opts))
	rootCmd.AddCommand(reportCmd(opts))
	rootCmd.AddCommand(ratesCmd(opts))

	return rootCmd
}

func (o *rootOptions) engine() (*pricing.Engine, error) {
	rt, err := config.LoadRates(o.ratesFile)
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(rt), nil
}
