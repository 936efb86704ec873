// Package pricing computes the Bitrix24 flat-rate vs per-user comparison
// shown by the pricing calculator. Plan data is a fixed table; prices are
// monthly BRL cents to keep the arithmetic exact.
package pricing

import "github.com/zopudigital/content-service/internal/domain"

// Plan is one Bitrix24 commercial plan.
type Plan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MaxUsers     int    `json:"maxUsers"`
	MonthlyCents int64  `json:"monthlyCents"`
	StorageGB    int    `json:"storageGb"`
}

// Flat-rate plan table. Bitrix24 charges per plan, not per seat.
var plans = []Plan{
	{ID: "basic", Name: "Basic", MaxUsers: 5, MonthlyCents: 24900, StorageGB: 24},
	{ID: "standard", Name: "Standard", MaxUsers: 50, MonthlyCents: 49900, StorageGB: 100},
	{ID: "professional", Name: "Professional", MaxUsers: 100, MonthlyCents: 99900, StorageGB: 1024},
	{ID: "enterprise", Name: "Enterprise", MaxUsers: 250, MonthlyCents: 199900, StorageGB: 3072},
}

// Plans returns the plan table in ascending price order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// Comparison is the result of comparing a flat-rate plan against a per-user
// competitor for a given team size.
type Comparison struct {
	Users               int   `json:"users"`
	Plan                Plan  `json:"plan"`
	MonthlyCents        int64 `json:"monthlyCents"`
	PerUserCents        int64 `json:"perUserCents"`
	CompetitorCents     int64 `json:"competitorCents"`
	MonthlySavingsCents int64 `json:"monthlySavingsCents"`
	AnnualSavingsCents  int64 `json:"annualSavingsCents"`
	CompetitorIsCheaper bool  `json:"competitorIsCheaper"`
}

// Compare picks the smallest plan that fits the team and sets it against a
// competitor charging perUserCents per seat per month. Returns
// domain.ErrNotFound when no plan covers the team size.
func Compare(users int, perUserCents int64) (*Comparison, error) {
	if users <= 0 {
		return nil, domain.ErrNotFound
	}

	var plan *Plan
	for i := range plans {
		if users <= plans[i].MaxUsers {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}

	competitor := perUserCents * int64(users)
	savings := competitor - plan.MonthlyCents

	return &Comparison{
		Users:               users,
		Plan:                *plan,
		MonthlyCents:        plan.MonthlyCents,
		PerUserCents:        perUserCents,
		CompetitorCents:     competitor,
		MonthlySavingsCents: savings,
		AnnualSavingsCents:  savings * 12,
		CompetitorIsCheaper: savings < 0,
	}, nil
}
