package cmd

import (
	"github.com/spf13/cobra"

	"github.com/davidbz/quoter/internal/domain"
)

type selectionFlags struct {
	bfsiTier     string
	personalize  string
	humanAgents  string
	aiModule     string
	smartRouting string
	throughput   string
}

// bind registers the feature flags; suffix ends each usage line.
func (f *selectionFlags) bind(c *cobra.Command, suffix string) {
	c.Flags().StringVar(&f.bfsiTier, "bfsi", "NA", "BFSI tier (NA, Tier 1, Tier 2, Tier 3)"+suffix)
	c.Flags().StringVar(&f.personalize, "personalize", "NA", "personalization load (NA, Standard, Advanced)"+suffix)
	c.Flags().StringVar(&f.humanAgents, "agents", "NA", "human agents (NA, 20+, 50+, 100+)"+suffix)
	c.Flags().StringVar(&f.aiModule, "ai-module", "No", "AI module (Yes, No)"+suffix)
	c.Flags().StringVar(&f.smartRouting, "smart-routing", "No", "smart routing (Yes, No)"+suffix)
	c.Flags().StringVar(&f.throughput, "tps", "NA", "increased throughput (NA, 250, 1000)"+suffix)
}

func (f *selectionFlags) Selection() domain.PlatformFeeSelection {
	return domain.ParseSelection(f.bfsiTier, f.personalize, f.humanAgents, f.aiModule, f.smartRouting, f.throughput)
}

func newFeeCmd(global *globalFlags) *cobra.Command {
	selection := &selectionFlags{}

	c := &cobra.Command{
		Use:   "fee",
		Short: "Compute the rate-card platform fee for a feature selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			quote, err := svc.PlatformFee(cmd.Context(), &domain.FeeRequest{
				Country:   global.Country(),
				Selection: selection.Selection(),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), quote)
		},
	}
	selection.bind(c, "")
	return c
}
