package domain

import (
	"strings"
)

// BFSITier is the banking/financial-services compliance tier.
type BFSITier string

const (
	BFSINone  BFSITier = "NA"
	BFSITier1 BFSITier = "Tier 1"
	BFSITier2 BFSITier = "Tier 2"
	BFSITier3 BFSITier = "Tier 3"
)

// PersonalizeLoad is the personalization workload level.
type PersonalizeLoad string

const (
	PersonalizeNone     PersonalizeLoad = "NA"
	PersonalizeStandard PersonalizeLoad = "Standard"
	PersonalizeAdvanced PersonalizeLoad = "Advanced"
)

// HumanAgents is the human-agent seat bracket.
type HumanAgents string

const (
	HumanAgentsNone HumanAgents = "NA"
	HumanAgents20   HumanAgents = "20+"
	HumanAgents50   HumanAgents = "50+"
	HumanAgents100  HumanAgents = "100+"
)

// Toggle is a yes/no feature switch.
type Toggle string

const (
	ToggleYes Toggle = "Yes"
	ToggleNo  Toggle = "No"
	ToggleNA  Toggle = "NA"
)

// Throughput is the increased messages-per-second option.
type Throughput string

const (
	ThroughputNone Throughput = "NA"
	Throughput250  Throughput = "250"
	Throughput1000 Throughput = "1000"
)

// PlatformFeeSelection bundles the independent platform-fee choices.
// Every combination is valid; surcharges simply add up.
type PlatformFeeSelection struct {
	BFSITier            BFSITier        `json:"bfsi_tier"`
	PersonalizeLoad     PersonalizeLoad `json:"personalize_load"`
	HumanAgents         HumanAgents     `json:"human_agents"`
	AIModule            Toggle          `json:"ai_module"`
	SmartRouting        Toggle          `json:"smart_routing"`
	IncreasedThroughput Throughput      `json:"increased_throughput"`
}

// ParseSelection normalizes raw form values into a selection.
func ParseSelection(bfsi, personalize, agents, aiModule, smartRouting, throughput string) PlatformFeeSelection {
	return PlatformFeeSelection{
		BFSITier:            ParseBFSITier(bfsi),
		PersonalizeLoad:     ParsePersonalizeLoad(personalize),
		HumanAgents:         HumanAgents(strings.TrimSpace(agents)),
		AIModule:            ParseToggle(aiModule),
		SmartRouting:        ParseToggle(smartRouting),
		IncreasedThroughput: Throughput(strings.TrimSpace(throughput)),
	}
}

// Normalize re-parses every field, so loosely spelled values match their canonical form.
func (s PlatformFeeSelection) Normalize() PlatformFeeSelection {
	return ParseSelection(
		string(s.BFSITier),
		string(s.PersonalizeLoad),
		string(s.HumanAgents),
		string(s.AIModule),
		string(s.SmartRouting),
		string(s.IncreasedThroughput),
	)
}

// ParseBFSITier accepts "Tier 2", "tier2" and "Tier2".
func ParseBFSITier(s string) BFSITier {
	compact := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch compact {
	case "tier1":
		return BFSITier1
	case "tier2":
		return BFSITier2
	case "tier3":
		return BFSITier3
	case "", "na":
		return BFSINone
	default:
		return BFSITier(strings.TrimSpace(s))
	}
}

// ParsePersonalizeLoad matches case-insensitively.
func ParsePersonalizeLoad(s string) PersonalizeLoad {
	trimmed := strings.TrimSpace(s)
	for _, p := range []PersonalizeLoad{PersonalizeNone, PersonalizeStandard, PersonalizeAdvanced} {
		if strings.EqualFold(string(p), trimmed) {
			return p
		}
	}
	if trimmed == "" {
		return PersonalizeNone
	}
	return PersonalizeLoad(trimmed)
}

// ParseToggle matches yes/no/na case-insensitively; anything else is NA.
func ParseToggle(s string) Toggle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return ToggleYes
	case "no", "n", "false":
		return ToggleNo
	default:
		return ToggleNA
	}
}

// FeeBucket groups countries that share a surcharge amount.
type FeeBucket string

const (
	BucketIndia       FeeBucket = "india"
	BucketAfricaRoW   FeeBucket = "africa_row"
	BucketLATAMEurope FeeBucket = "latam_europe"
	BucketOther       FeeBucket = "other"
)

// BucketFunc assigns a country to a fee bucket. Each rule has its own.
type BucketFunc func(Country) FeeBucket

// IndiaOrOther separates India from every other market.
func IndiaOrOther(c Country) FeeBucket {
	if c == CountryIndia {
		return BucketIndia
	}
	return BucketOther
}

// IndiaAfricaRoWOrOther separates India, Africa/Rest of World and the rest.
func IndiaAfricaRoWOrOther(c Country) FeeBucket {
	switch c {
	case CountryIndia:
		return BucketIndia
	case CountryAfrica, CountryRestOfWorld:
		return BucketAfricaRoW
	default:
		return BucketOther
	}
}

// IndiaLATAMEuropeOrOther separates India, LATAM/Europe and the rest.
func IndiaLATAMEuropeOrOther(c Country) FeeBucket {
	switch c {
	case CountryIndia:
		return BucketIndia
	case CountryLATAM, CountryEurope:
		return BucketLATAMEurope
	default:
		return BucketOther
	}
}

// MinimumRule is the base platform fee per bucket.
type MinimumRule struct {
	Bucket  BucketFunc
	Amounts map[FeeBucket]float64
}

// Amount returns the minimum fee for a country.
func (r MinimumRule) Amount(c Country) float64 {
	if r.Bucket == nil {
		return 0
	}
	return r.Amounts[r.Bucket(c)]
}

// SurchargeRule maps (selection value, bucket) to an additive amount.
// Values absent from Amounts, such as the no-op value, add nothing.
type SurchargeRule[V ~string] struct {
	Bucket  BucketFunc
	Amounts map[V]map[FeeBucket]float64
}

// Surcharge returns the amount added for value in country.
func (r SurchargeRule[V]) Surcharge(c Country, value V) float64 {
	byBucket, ok := r.Amounts[value]
	if !ok || r.Bucket == nil {
		return 0
	}
	return byBucket[r.Bucket(c)]
}

// FeeSchedule is the declarative platform-fee rule set.
type FeeSchedule struct {
	Minimum      MinimumRule
	BFSI         SurchargeRule[BFSITier]
	Personalize  SurchargeRule[PersonalizeLoad]
	HumanAgents  SurchargeRule[HumanAgents]
	AIModule     SurchargeRule[Toggle]
	SmartRouting SurchargeRule[Toggle]
	Throughput   SurchargeRule[Throughput]
}

// FeeComponent is one additive term of a platform fee.
type FeeComponent struct {
	Name      string  `json:"name"`
	Selection string  `json:"selection,omitempty"`
	Amount    float64 `json:"amount"`
}

// FeeQuote is the computed platform fee.
type FeeQuote struct {
	Fee        float64        `json:"fee"`
	Currency   string         `json:"currency"`
	Components []FeeComponent `json:"components"`
}

// Currency codes returned with platform fees.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// CurrencyCode returns INR for India and USD for every other market.
func CurrencyCode(c Country) string {
	if c == CountryIndia {
		return CurrencyINR
	}
	return CurrencyUSD
}

// FeeEngine computes platform fees from a FeeSchedule.
type FeeEngine struct {
	schedule FeeSchedule
}

// NewFeeEngine creates a fee engine (DI constructor).
func NewFeeEngine(schedule FeeSchedule) *FeeEngine {
	return &FeeEngine{
		schedule: schedule,
	}
}

// ComputeFee returns the minimum fee plus every selected surcharge.
// The selection is normalized first, so "Tier2" and "Tier 2" price the same.
func (e *FeeEngine) ComputeFee(country Country, sel PlatformFeeSelection) FeeQuote {
	sel = sel.Normalize()
	minimum := e.schedule.Minimum.Amount(country)
	quote := FeeQuote{
		Fee:        minimum,
		Currency:   CurrencyCode(country),
		Components: []FeeComponent{{Name: "minimum", Selection: "", Amount: minimum}},
	}

	add := func(name, selection string, amount float64) {
		if amount == 0 {
			return
		}
		quote.Fee += amount
		quote.Components = append(quote.Components, FeeComponent{
			Name:      name,
			Selection: selection,
			Amount:    amount,
		})
	}

	add("bfsi_tier", string(sel.BFSITier), e.schedule.BFSI.Surcharge(country, sel.BFSITier))
	add("personalize_load", string(sel.PersonalizeLoad), e.schedule.Personalize.Surcharge(country, sel.PersonalizeLoad))
	add("human_agents", string(sel.HumanAgents), e.schedule.HumanAgents.Surcharge(country, sel.HumanAgents))
	add("ai_module", string(sel.AIModule), e.schedule.AIModule.Surcharge(country, sel.AIModule))
	add("smart_routing", string(sel.SmartRouting), e.schedule.SmartRouting.Surcharge(country, sel.SmartRouting))
	add("increased_throughput", string(sel.IncreasedThroughput),
		e.schedule.Throughput.Surcharge(country, sel.IncreasedThroughput))

	return quote
}
