package domain

import (
	"math"
	"strings"
)

// Country identifies a market. It drives currency, tier tables, meta costs and fee constants.
type Country string

const (
	CountryIndia       Country = "India"
	CountryMENA        Country = "MENA"
	CountryLATAM       Country = "LATAM"
	CountryAfrica      Country = "Africa"
	CountryEurope      Country = "Europe"
	CountryRestOfWorld Country = "Rest of World"
)

// KnownCountries lists every market with reference data.
//
//nolint:gochecknoglobals // Read-only enumeration
var KnownCountries = []Country{
	CountryIndia,
	CountryMENA,
	CountryLATAM,
	CountryAfrica,
	CountryEurope,
	CountryRestOfWorld,
}

// ParseCountry matches a market name case-insensitively.
// Unknown names are returned verbatim so lookups fall back to their defaults.
func ParseCountry(s string) Country {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "row", "rest-of-world", "rest_of_world":
		return CountryRestOfWorld
	}
	for _, c := range KnownCountries {
		if strings.EqualFold(string(c), trimmed) {
			return c
		}
	}
	return Country(trimmed)
}

// MessageType is a billable message category.
type MessageType string

const (
	MessageAI             MessageType = "ai"
	MessageAdvanced       MessageType = "advanced"
	MessageBasicMarketing MessageType = "basic_marketing"
	MessageBasicUtility   MessageType = "basic_utility"
)

// MessageTypes is the canonical line-item order.
//
//nolint:gochecknoglobals // Read-only enumeration
var MessageTypes = []MessageType{
	MessageAI,
	MessageAdvanced,
	MessageBasicMarketing,
	MessageBasicUtility,
}

// Label returns the display name of the message type.
func (t MessageType) Label() string {
	switch t {
	case MessageAI:
		return "AI Message"
	case MessageAdvanced:
		return "Advanced Message"
	case MessageBasicMarketing:
		return "Basic Marketing Message"
	case MessageBasicUtility:
		return "Basic Utility/Authentication Message"
	default:
		return string(t)
	}
}

// VolumeBand is the half-open interval (Lower, Upper] priced at Price.
// The top band has Upper == +Inf.
type VolumeBand struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Price float64 `json:"price"`
}

// Contains reports whether volume falls inside the band.
func (b VolumeBand) Contains(volume float64) bool {
	return b.Lower < volume && volume <= b.Upper
}

// Unbounded reports whether the band has no upper limit.
func (b VolumeBand) Unbounded() bool {
	return math.IsInf(b.Upper, 1)
}

// MetaCosts are the per-message pass-through costs charged by the channel provider.
type MetaCosts struct {
	AI        float64 `json:"ai"`
	Marketing float64 `json:"marketing"`
	Utility   float64 `json:"utility"`
}

// For returns the meta cost applied to a message type.
// Advanced messages are costed with the AI meta cost.
func (m MetaCosts) For(t MessageType) float64 {
	switch t {
	case MessageAI, MessageAdvanced:
		return m.AI
	case MessageBasicMarketing:
		return m.Marketing
	case MessageBasicUtility:
		return m.Utility
	default:
		return 0
	}
}

// Volumes holds message counts per type.
type Volumes struct {
	AI             float64 `json:"ai"`
	Advanced       float64 `json:"advanced"`
	BasicMarketing float64 `json:"basic_marketing"`
	BasicUtility   float64 `json:"basic_utility"`
}

// Of returns the volume for a message type.
func (v Volumes) Of(t MessageType) float64 {
	switch t {
	case MessageAI:
		return v.AI
	case MessageAdvanced:
		return v.Advanced
	case MessageBasicMarketing:
		return v.BasicMarketing
	case MessageBasicUtility:
		return v.BasicUtility
	default:
		return 0
	}
}

// Sanitize clamps negative and non-finite volumes to 0, the same rule ParseVolume applies.
func (v Volumes) Sanitize() Volumes {
	return Volumes{
		AI:             cleanVolume(v.AI),
		Advanced:       cleanVolume(v.Advanced),
		BasicMarketing: cleanVolume(v.BasicMarketing),
		BasicUtility:   cleanVolume(v.BasicUtility),
	}
}

func cleanVolume(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// AllZero reports whether no message type has volume.
func (v Volumes) AllZero() bool {
	return v.AI == 0 && v.Advanced == 0 && v.BasicMarketing == 0 && v.BasicUtility == 0
}

// Prices holds optional per-type prices chosen by the user. Nil means "use the rate card".
type Prices struct {
	AI             *float64 `json:"ai,omitempty"`
	Advanced       *float64 `json:"advanced,omitempty"`
	BasicMarketing *float64 `json:"basic_marketing,omitempty"`
	BasicUtility   *float64 `json:"basic_utility,omitempty"`
}

// Of returns the chosen price for a message type and whether one was provided.
func (p Prices) Of(t MessageType) (float64, bool) {
	var v *float64
	switch t {
	case MessageAI:
		v = p.AI
	case MessageAdvanced:
		v = p.Advanced
	case MessageBasicMarketing:
		v = p.BasicMarketing
	case MessageBasicUtility:
		v = p.BasicUtility
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// RateSheet maps message types to rate-card prices.
type RateSheet map[MessageType]float64

// Price returns a float pointer, for building Prices literals.
func Price(v float64) *float64 {
	return &v
}

// LineItemKind tags the shape of a line item.
type LineItemKind string

const (
	LineItemMessage         LineItemKind = "message"
	LineItemBundleMessage   LineItemKind = "bundle_message"
	LineItemPlatformFee     LineItemKind = "platform_fee"
	LineItemCommittedAmount LineItemKind = "committed_amount"
)

// LineItem is one row of a quote. Kind decides the payload: message rows carry
// a MessageLine, bundle message rows a BundleLine, and fee and committed-amount
// rows only a revenue figure.
type LineItem struct {
	Kind        LineItemKind `json:"kind"`
	Label       string       `json:"label"`
	MessageType MessageType  `json:"message_type,omitempty"`
	Message     *MessageLine `json:"message,omitempty"`
	Bundle      *BundleLine  `json:"bundle,omitempty"`
	Revenue     float64      `json:"revenue"`
}

// MessageLine contains the per-message pricing fields of a message row.
type MessageLine struct {
	Volume           float64 `json:"volume"`
	ChosenPrice      float64 `json:"chosen_price"`
	SuggestedPrice   float64 `json:"suggested_price"`
	OveragePrice     float64 `json:"overage_price"`
	MetaCost         float64 `json:"meta_cost"`
	FinalPrice       float64 `json:"final_price"`
	SuggestedRevenue float64 `json:"suggested_revenue"`
}

// BundleLine is the per-message part of a bundle row. SuggestedPrice is only
// set in volume mode, where a rate-card lookup happens.
type BundleLine struct {
	Volume         float64  `json:"volume"`
	AgreedPrice    float64  `json:"agreed_price"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	OveragePrice   float64  `json:"overage_price"`
}

// QuoteResult is the aggregate output of a volume-based calculation.
type QuoteResult struct {
	Country                Country    `json:"country"`
	Currency               string     `json:"currency"`
	LineItems              []LineItem `json:"line_items"`
	PlatformFee            float64    `json:"platform_fee"`
	Revenue                float64    `json:"revenue"`
	SuggestedRevenue       float64    `json:"suggested_revenue"`
	ChannelCost            float64    `json:"channel_cost"`
	AICost                 float64    `json:"ai_cost"`
	TotalCost              float64    `json:"total_cost"`
	MarginPercent          float64    `json:"margin_percent"`
	SuggestedMarginPercent float64    `json:"suggested_margin_percent"`
}

// BundleMode selects how a bundle is billed.
type BundleMode string

const (
	BundleModeCommitted BundleMode = "committed"
	BundleModeVolume    BundleMode = "volume"
)

// BundleQuote is the result of the committed-amount billing mode.
type BundleQuote struct {
	Mode             BundleMode   `json:"mode"`
	Country          Country      `json:"country"`
	Currency         string       `json:"currency"`
	LineItems        []LineItem   `json:"line_items"`
	PlatformFee      float64      `json:"platform_fee"`
	CommittedAmount  float64      `json:"committed_amount"`
	BundleCost       float64      `json:"bundle_cost"`
	TotalBundlePrice float64      `json:"total_bundle_price"`
	GrandTotal       float64      `json:"grand_total"`
	Quote            *QuoteResult `json:"quote,omitempty"`
}

// ViolationKind classifies a discount-floor finding.
type ViolationKind string

const (
	ViolationPriceBelowFloor       ViolationKind = "price_below_floor"
	ViolationPlatformFeeBelowFloor ViolationKind = "platform_fee_below_floor"
	ViolationHighRejectionRisk     ViolationKind = "high_rejection_probability"
)

// Violation is an advisory finding raised by the discount guard.
type Violation struct {
	Kind      ViolationKind `json:"kind"`
	Item      string        `json:"item,omitempty"`
	Chosen    float64       `json:"chosen,omitempty"`
	Reference float64       `json:"reference,omitempty"`
	Floor     float64       `json:"floor,omitempty"`
	Message   string        `json:"message"`
}

// RateQuote is the stage-two suggestion for one message type.
type RateQuote struct {
	MessageType    MessageType `json:"message_type"`
	Volume         float64     `json:"volume"`
	SuggestedPrice float64     `json:"suggested_price"`
	DisplayPrice   float64     `json:"display_price"`
	OveragePrice   float64     `json:"overage_price"`
	MetaCost       float64     `json:"meta_cost"`
}
