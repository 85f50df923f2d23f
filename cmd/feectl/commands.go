package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

func quoteCmd(opts *rootOptions) *cobra.Command {
	var (
		country     string
		currency    string
		crossBorder bool
		purpose     string
		minor       bool
	)

	cmd := &cobra.Command{
		Use:   "quote <amount>",
		Short: "Split the platform fee for a payment",
		Long: `Quote the subscriber and creator fee for a base price.

The amount is in major units of the currency (e.g. 45.00) unless --minor
is set. Exactly one of --country, which fixes currency and cross-border
status, or --currency must be given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			cur := currency
			if country != "" {
				code, err := engine.Rates().NormalizeCountry(country)
				if err != nil {
					return err
				}
				c, _ := engine.Rates().Country(code)
				cur = c.Currency
			}
			if cur == "" {
				return fmt.Errorf("one of --country or --currency is required")
			}

			var cents int64
			if minor {
				cents, err = strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %q", pricing.ErrInvalidAmount, args[0])
				}
			} else {
				cents, err = engine.Rates().ParseAmount(args[0], cur)
			}
			if err != nil {
				return err
			}

			resp, err := service.NewQuoteService(engine).Quote(cmd.Context(), &dto.QuoteRequest{
				AmountCents: &cents,
				Country:     country,
				Currency:    currency,
				CrossBorder: crossBorder,
				Purpose:     purpose,
			})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			rt := engine.Rates()
			return writeTable(cmd.OutOrStdout(), [][]string{
				{"currency", resp.Currency},
				{"purpose", string(resp.Purpose)},
				{"cross-border", fmt.Sprint(resp.CrossBorder)},
				{"fee rate", formatPercent(resp.FeeRate)},
				{"base", rt.FormatAmount(resp.BaseCents, resp.Currency)},
				{"subscriber pays", rt.FormatAmount(resp.GrossCents, resp.Currency)},
				{"creator receives", rt.FormatAmount(resp.NetCents, resp.Currency)},
				{"subscriber fee", rt.FormatAmount(resp.SubscriberFeeCents, resp.Currency)},
				{"creator fee", rt.FormatAmount(resp.CreatorFeeCents, resp.Currency)},
				{"platform fee", rt.FormatAmount(resp.FeeCents, resp.Currency)},
				{"est. processor cost", rt.FormatAmount(resp.Margin.ProcessorCostCents, resp.Currency)},
				{"est. platform net", rt.FormatAmount(resp.Margin.PlatformNetCents, resp.Currency)},
				{"below margin floor", fmt.Sprint(resp.Margin.BelowMinMargin)},
			})
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "Creator country (ISO code or name)")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code when no country is given")
	cmd.Flags().BoolVar(&crossBorder, "cross-border", false, "Apply the cross-border buffer (only with --currency)")
	cmd.Flags().StringVarP(&purpose, "purpose", "p", "personal", "Payment purpose (personal, service)")
	cmd.Flags().BoolVar(&minor, "minor", false, "Amount is already in minor units")

	cmd.MarkFlagsMutuallyExclusive("country", "currency")
	cmd.MarkFlagsMutuallyExclusive("country", "cross-border")
	return cmd
}

func breakdownCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown <country>",
		Short: "Show estimated fee components for a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			b, err := engine.FeeBreakdown(args[0])
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), b)
			}
			return writeTable(cmd.OutOrStdout(), [][]string{
				{"country", b.Country + " (" + b.CountryName + ")"},
				{"currency", b.Currency},
				{"cross-border", fmt.Sprint(b.CrossBorder)},
				{"platform fee", formatPercent(b.PlatformFeeRate)},
				{"processing", formatPercent(b.ProcessingPercent)},
				{"billing", formatPercent(b.BillingPercent)},
				{"payout", formatPercent(b.PayoutPercent)},
				{"cross-border fee", formatPercent(b.CrossBorderPercent)},
				{"intl card", formatPercent(b.IntlCardPercent)},
				{"fx", formatPercent(b.FXPercent)},
				{"total percent fees", formatPercent(b.TotalPercentFees)},
				{"net margin", formatPercent(b.NetMarginRate)},
				{"processing fixed", fmt.Sprintf("%.2f¢", b.ProcessingFixedCents)},
				{"payout fixed", fmt.Sprintf("%d¢", b.PayoutFixedCents)},
				{"monthly account fee", fmt.Sprintf("%d¢", b.MonthlyAccountFeeCents)},
			})
		},
	}
}

func minimumCmd(opts *rootOptions) *cobra.Command {
	var subscribers []int

	cmd := &cobra.Command{
		Use:   "minimum <country>",
		Short: "Compute the minimum page price for a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			ladder, err := engine.Minimums(args[0], subscribers...)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), ladder)
			}
			rows := [][]string{{"SUBSCRIBERS", "MIN USD", "MIN LOCAL", "RAW USD", "FLOOR"}}
			for _, m := range ladder {
				rows = append(rows, []string{
					fmt.Sprint(m.SubscriberCount),
					fmt.Sprint(m.MinimumUSD),
					fmt.Sprintf("%d %s", m.MinimumLocal, m.Currency),
					fmt.Sprintf("%.2f", m.RawMinimumUSD),
					floorLabel(m.FloorApplied, m.FloorUSD),
				})
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().IntSliceVarP(&subscribers, "subscribers", "n", []int{1}, "Subscriber counts to amortize the monthly fee over")
	return cmd
}

func reportCmd(opts *rootOptions) *cobra.Command {
	var subscribers []int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Profitability and minimum prices for every configured country",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			report, err := service.NewProfitabilityService(engine).Report(cmd.Context(), subscribers)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			header := []string{"COUNTRY", "CUR", "XB", "PLATFORM", "FEES", "MARGIN"}
			for _, n := range report.SubscriberCounts {
				header = append(header, fmt.Sprintf("MIN@%d", n))
			}
			rows := [][]string{header}
			for _, r := range report.Rows {
				row := []string{
					r.Country,
					r.Breakdown.Currency,
					yesNo(r.Breakdown.CrossBorder),
					formatPercent(r.Breakdown.PlatformFeeRate),
					formatPercent(r.Breakdown.TotalPercentFees),
					formatPercent(r.Breakdown.NetMarginRate),
				}
				if r.Error != "" {
					row = append(row, "UNPROFITABLE")
				}
				for _, m := range r.Minimums {
					row = append(row, fmt.Sprintf("$%d", m.MinimumUSD))
				}
				rows = append(rows, row)
			}
			if err := writeTable(cmd.OutOrStdout(), rows); err != nil {
				return err
			}
			if len(report.Unprofitable) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nunprofitable: %s\n", strings.Join(report.Unprofitable, ", "))
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&subscribers, "subscribers", "n", service.DefaultSubscriberCounts, "Subscriber counts for the minimum ladder")
	return cmd
}

func ratesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the effective rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			v := engine.Rates().View()

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			rows := [][]string{
				{"fee model", v.FeeModel},
				{"fee mode", v.FeeMode},
				{"platform fee", formatPercent(v.PlatformFeeRate)},
				{"split rate", formatPercent(v.SplitRate)},
				{"cross-border buffer", formatPercent(v.CrossBorderBuffer)},
				{"cross-border rate", formatPercent(v.CrossBorderRate)},
				{"cross-border countries", strings.Join(v.CrossBorderCountries, ", ")},
				{"minimum step", fmt.Sprintf("$%d", v.MinimumStepUSD)},
				{"domestic floor", fmt.Sprintf("$%d", v.DomesticFloorUSD)},
				{"cross-border floor", fmt.Sprintf("$%d", v.CrossBorderFloorUSD)},
			}
			for _, p := range sortedKeys(v.PurposeRates) {
				rows = append(rows, []string{"purpose " + p, formatPercent(v.PurposeRates[p])})
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}
}
