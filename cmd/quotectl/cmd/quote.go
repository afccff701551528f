package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidbz/quoter/internal/domain"
)

func newRatesCmd(global *globalFlags) *cobra.Command {
	vols := &volumeFlags{}

	c := &cobra.Command{
		Use:   "rates",
		Short: "Show suggested and overage prices for the given volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			rates, err := svc.SuggestRates(cmd.Context(), &domain.RatesRequest{
				Country: global.Country(),
				Volumes: vols.Volumes(),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rates)
		},
	}
	vols.bind(c)
	return c
}

func newQuoteCmd(global *globalFlags) *cobra.Command {
	var (
		vols         = &volumeFlags{}
		chosen       = &priceFlags{}
		selection    = &selectionFlags{}
		outputFormat string
	)

	c := &cobra.Command{
		Use:   "quote",
		Short: "Calculate a volume quote and validate chosen prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			country := global.Country()
			result, err := svc.Quote(cmd.Context(), &domain.QuoteRequest{
				Country:     country,
				Volumes:     vols.Volumes(),
				PlatformFee: chosen.Fee(),
				Prices:      chosen.Prices(),
			})
			if err != nil {
				return err
			}

			validation, err := svc.ValidatePrices(cmd.Context(), &domain.ValidationRequest{
				Country:     country,
				Volumes:     vols.Volumes(),
				Prices:      chosen.Prices(),
				PlatformFee: chosen.Fee(),
				Selection:   selection.Selection(),
			})
			if err != nil {
				return err
			}

			if outputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"quote":      result,
					"validation": validation,
				})
			}
			return printQuote(cmd.OutOrStdout(), result, validation)
		},
	}
	vols.bind(c)
	chosen.bind(c)
	// Selection flags recompute the rate-card fee used by the discount floor.
	selection.bind(c, " of the rate-card fee")
	c.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")
	return c
}

func newBundleCmd(global *globalFlags) *cobra.Command {
	var (
		vols      = &volumeFlags{}
		chosen    = &priceFlags{}
		committed string
	)

	c := &cobra.Command{
		Use:   "bundle",
		Short: "Calculate a committed-amount bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			quote, err := svc.Bundle(cmd.Context(), &domain.BundleRequest{
				Country:         global.Country(),
				Volumes:         vols.Volumes(),
				Prices:          chosen.Prices(),
				PlatformFee:     chosen.Fee(),
				CommittedAmount: domain.ParseAmount(committed),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), quote)
		},
	}
	vols.bind(c)
	chosen.bind(c)
	c.Flags().StringVar(&committed, "committed", "", "committed amount (used when all volumes are zero)")
	return c
}

func printQuote(w io.Writer, result *domain.QuoteResult, validation *domain.ValidationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ITEM\tVOLUME\tPRICE\tSUGGESTED\tOVERAGE\tMETA\tFINAL\tREVENUE (%s)\n", result.Currency)
	for _, item := range result.LineItems {
		if item.Message == nil {
			fmt.Fprintf(tw, "%s\t\t\t\t\t\t\t%.2f\n", item.Label, domain.RoundTo(item.Revenue, 2))
			continue
		}
		m := item.Message
		fmt.Fprintf(tw, "%s\t%.0f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\n",
			item.Label, m.Volume, m.ChosenPrice, m.SuggestedPrice, m.OveragePrice,
			m.MetaCost, m.FinalPrice, domain.RoundTo(item.Revenue, 2))
	}
	fmt.Fprintf(tw, "\nRevenue\t%.2f\n", domain.RoundTo(result.Revenue, 2))
	fmt.Fprintf(tw, "Total cost\t%.2f\n", domain.RoundTo(result.TotalCost, 2))
	fmt.Fprintf(tw, "Margin\t%.2f%%\n", domain.RoundTo(result.MarginPercent, 2))
	fmt.Fprintf(tw, "Rate-card margin\t%.2f%%\n", domain.RoundTo(result.SuggestedMarginPercent, 2))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write quote: %w", err)
	}

	for _, v := range validation.Violations {
		fmt.Fprintf(w, "WARNING: %s\n", v.Message)
	}
	return nil
}
