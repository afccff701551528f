package ratecard

import "github.com/davidbz/quoter/internal/domain"

type amounts = map[domain.FeeBucket]float64

// FeeSchedule returns the platform-fee rules. India amounts are in INR, everything else in USD.
func FeeSchedule() domain.FeeSchedule {
	return domain.FeeSchedule{
		Minimum: domain.MinimumRule{
			Bucket: domain.IndiaAfricaRoWOrOther,
			Amounts: amounts{
				domain.BucketIndia:     100000,
				domain.BucketAfricaRoW: 1000,
				domain.BucketOther:     1500,
			},
		},
		BFSI: domain.SurchargeRule[domain.BFSITier]{
			Bucket: domain.IndiaAfricaRoWOrOther,
			Amounts: map[domain.BFSITier]amounts{
				domain.BFSITier1: {domain.BucketIndia: 250000, domain.BucketAfricaRoW: 2500, domain.BucketOther: 3000},
				domain.BFSITier2: {domain.BucketIndia: 500000, domain.BucketAfricaRoW: 5000, domain.BucketOther: 6000},
				domain.BFSITier3: {domain.BucketIndia: 1000000, domain.BucketAfricaRoW: 10000, domain.BucketOther: 12000},
			},
		},
		Personalize: domain.SurchargeRule[domain.PersonalizeLoad]{
			Bucket: domain.IndiaOrOther,
			Amounts: map[domain.PersonalizeLoad]amounts{
				domain.PersonalizeStandard: {domain.BucketIndia: 50000, domain.BucketOther: 600},
				domain.PersonalizeAdvanced: {domain.BucketIndia: 100000, domain.BucketOther: 1200},
			},
		},
		HumanAgents: domain.SurchargeRule[domain.HumanAgents]{
			Bucket: domain.IndiaLATAMEuropeOrOther,
			Amounts: map[domain.HumanAgents]amounts{
				domain.HumanAgents20:  {domain.BucketIndia: 50000, domain.BucketLATAMEurope: 600, domain.BucketOther: 500},
				domain.HumanAgents50:  {domain.BucketIndia: 75000, domain.BucketLATAMEurope: 900, domain.BucketOther: 750},
				domain.HumanAgents100: {domain.BucketIndia: 100000, domain.BucketLATAMEurope: 1200, domain.BucketOther: 1000},
			},
		},
		AIModule: domain.SurchargeRule[domain.Toggle]{
			Bucket: domain.IndiaLATAMEuropeOrOther,
			Amounts: map[domain.Toggle]amounts{
				domain.ToggleYes: {domain.BucketIndia: 50000, domain.BucketLATAMEurope: 600, domain.BucketOther: 500},
			},
		},
		SmartRouting: domain.SurchargeRule[domain.Toggle]{
			Bucket: domain.IndiaAfricaRoWOrOther,
			Amounts: map[domain.Toggle]amounts{
				domain.ToggleYes: {domain.BucketIndia: 25000, domain.BucketAfricaRoW: 300, domain.BucketOther: 400},
			},
		},
		Throughput: domain.SurchargeRule[domain.Throughput]{
			Bucket: domain.IndiaOrOther,
			Amounts: map[domain.Throughput]amounts{
				domain.Throughput250:  {domain.BucketIndia: 50000, domain.BucketOther: 500},
				domain.Throughput1000: {domain.BucketIndia: 100000, domain.BucketOther: 1000},
			},
		},
	}
}

// NewFeeEngine builds the fee engine over the default schedule.
func NewFeeEngine() *domain.FeeEngine {
	return domain.NewFeeEngine(FeeSchedule())
}
