// Package cmd provides the quotectl commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/ratecard"
)

// globalFlags are shared by every subcommand through the root's persistent flags.
type globalFlags struct {
	country string
}

func (g *globalFlags) Country() domain.Country {
	return domain.ParseCountry(g.country)
}

type volumeFlags struct {
	ai        string
	advanced  string
	marketing string
	utility   string
}

func (f *volumeFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.ai, "ai", "0", "AI message volume")
	c.Flags().StringVar(&f.advanced, "advanced", "0", "advanced message volume")
	c.Flags().StringVar(&f.marketing, "marketing", "0", "basic marketing message volume")
	c.Flags().StringVar(&f.utility, "utility", "0", "basic utility message volume")
}

func (f *volumeFlags) Volumes() domain.Volumes {
	return domain.Volumes{
		AI:             domain.ParseVolume(f.ai),
		Advanced:       domain.ParseVolume(f.advanced),
		BasicMarketing: domain.ParseVolume(f.marketing),
		BasicUtility:   domain.ParseVolume(f.utility),
	}
}

type priceFlags struct {
	ai          string
	advanced    string
	marketing   string
	utility     string
	platformFee string
}

func (f *priceFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.ai, "ai-price", "", "chosen AI message price (default: rate card)")
	c.Flags().StringVar(&f.advanced, "advanced-price", "", "chosen advanced message price (default: rate card)")
	c.Flags().StringVar(&f.marketing, "marketing-price", "", "chosen marketing message price (default: rate card)")
	c.Flags().StringVar(&f.utility, "utility-price", "", "chosen utility message price (default: rate card)")
	c.Flags().StringVar(&f.platformFee, "platform-fee", "0", "platform fee")
}

func (f *priceFlags) Prices() domain.Prices {
	return domain.Prices{
		AI:             domain.ParsePrice(f.ai),
		Advanced:       domain.ParsePrice(f.advanced),
		BasicMarketing: domain.ParsePrice(f.marketing),
		BasicUtility:   domain.ParsePrice(f.utility),
	}
}

func (f *priceFlags) Fee() float64 {
	if v := domain.ParseAmount(f.platformFee); v != nil {
		return *v
	}
	return 0
}

const rootLong = `quotectl runs the quotation engine from the command line.

Examples:
  quotectl fee --country India --bfsi "Tier 2" --personalize Standard --agents 50+ --ai-module Yes
  quotectl rates --country MENA --ai 20000
  quotectl quote --country India --ai 5000 --platform-fee 775000 --ai-price 0.95
  quotectl bundle --country India --committed 5000 --platform-fee 1000 --ai-price 0.8`

// newRootCmd builds a fresh command tree, so flag values never leak between runs.
func newRootCmd() *cobra.Command {
	global := &globalFlags{}

	root := &cobra.Command{
		Use:          "quotectl",
		Short:        "Price messaging volumes against the rate card",
		Long:         rootLong,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&global.country, "country", "c", string(domain.CountryIndia), "market to quote")

	root.AddCommand(
		newFeeCmd(global),
		newRatesCmd(global),
		newQuoteCmd(global),
		newBundleCmd(global),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}

// newService wires the engine without metrics or events.
func newService() (*domain.QuoteService, error) {
	book, err := ratecard.NewRateBook()
	if err != nil {
		return nil, err
	}
	calculator := domain.NewStandardPricingCalculator(book)
	return domain.NewQuoteService(
		book,
		ratecard.NewFeeEngine(),
		calculator,
		domain.NewDiscountGuard(domain.DefaultDiscountFloor),
		domain.NewStandardBundleCalculator(book, calculator, domain.DefaultOverageMultiplier),
		domain.NopRecorder{},
		nil,
	), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
