package domain

import "fmt"

// DefaultDiscountFloor is the fraction of the rate card below which a price is flagged.
const DefaultDiscountFloor = 0.5

const platformFeeItem = "platform_fee"

// DiscountGuard flags prices discounted below a fraction of the rate card.
type DiscountGuard struct {
	floor float64
}

// NewDiscountGuard creates a discount guard. A non-positive floor uses DefaultDiscountFloor.
func NewDiscountGuard(floor float64) *DiscountGuard {
	if floor <= 0 {
		floor = DefaultDiscountFloor
	}
	return &DiscountGuard{
		floor: floor,
	}
}

// Floor returns the configured discount floor.
func (g *DiscountGuard) Floor() float64 {
	return g.floor
}

// Validate returns one violation per underpriced item, followed by a
// high-rejection warning when anything was flagged.
// Message prices are only checked when a chosen price exists and the rate card is nonzero;
// the platform fee is always checked.
func (g *DiscountGuard) Validate(
	chosen Prices,
	suggested RateSheet,
	chosenPlatformFee float64,
	rateCardPlatformFee float64,
) []Violation {
	violations := make([]Violation, 0)

	for _, messageType := range MessageTypes {
		price, ok := chosen.Of(messageType)
		if !ok {
			continue
		}
		reference := suggested[messageType]
		if reference == 0 {
			continue
		}
		floor := g.floor * reference
		if price < floor {
			violations = append(violations, Violation{
				Kind:      ViolationPriceBelowFloor,
				Item:      string(messageType),
				Chosen:    price,
				Reference: reference,
				Floor:     floor,
				Message: fmt.Sprintf("%s price %.4f is below %.0f%% of the suggested %.4f",
					messageType.Label(), price, g.floor*percent, reference),
			})
		}
	}

	feeFloor := g.floor * rateCardPlatformFee
	if chosenPlatformFee < feeFloor {
		violations = append(violations, Violation{
			Kind:      ViolationPlatformFeeBelowFloor,
			Item:      platformFeeItem,
			Chosen:    chosenPlatformFee,
			Reference: rateCardPlatformFee,
			Floor:     feeFloor,
			Message: fmt.Sprintf("Platform fee %.2f is below %.0f%% of the rate card fee %.2f",
				chosenPlatformFee, g.floor*percent, rateCardPlatformFee),
		})
	}

	if len(violations) > 0 {
		violations = append(violations, Violation{
			Kind:    ViolationHighRejectionRisk,
			Message: "Discounts exceed the allowed floor; this quote has a high probability of rejection",
		})
	}

	return violations
}

// HasViolations reports whether a validation produced any finding.
func HasViolations(violations []Violation) bool {
	return len(violations) > 0
}
