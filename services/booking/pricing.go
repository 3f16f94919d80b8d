package booking

import (
	"context"

	priceruleRepo "resortly/database/repository/pricerule"
	"resortly/models"
)

// PriceRuleResolver turns a base price and the active rule set into the
// final unit price for a given date. Resolution is deterministic: highest
// priority wins, resource-specific scope beats type-wide scope, and the most
// recently created rule breaks remaining ties. Rules that still tie after
// all three steps are a configuration defect and fail hard rather than
// silently picking one.
type PriceRuleResolver struct {
	Rules priceruleRepo.PriceRuleRepository
}

// ResolvePrice resolves the final unit price for a single date.
func (pr *PriceRuleResolver) ResolvePrice(ctx context.Context, base models.Cents, resourceID string, rtype models.ResourceType, date models.Day) (models.Cents, error) {
	rates, err := pr.ResolveNightly(ctx, resourceID, rtype, date, date.AddDays(1), func(models.Day) models.Cents { return base })
	if err != nil {
		return 0, err
	}
	return rates[0].Price, nil
}

// ResolvePriceRange resolves one price per night of the half-open range
// [start, end) against a uniform base price.
func (pr *PriceRuleResolver) ResolvePriceRange(ctx context.Context, base models.Cents, resourceID string, rtype models.ResourceType, start, end models.Day) ([]models.NightRate, error) {
	return pr.ResolveNightly(ctx, resourceID, rtype, start, end, func(models.Day) models.Cents { return base })
}

// ResolveNightly is the general form: baseFor supplies the per-night base
// price, which is how resource-specific defaults such as precomputed
// weekend rates enter the resolution without the resolver special-casing
// days of the week. Rules are fetched once for the whole range.
func (pr *PriceRuleResolver) ResolveNightly(ctx context.Context, resourceID string, rtype models.ResourceType, start, end models.Day, baseFor func(models.Day) models.Cents) ([]models.NightRate, error) {
	nights := models.Nights(start, end)
	if nights == nil {
		return nil, reject(CodeInvalidRange, "date range end %s must be after start %s", end, start)
	}

	rules, err := pr.Rules.ListActive(ctx, resourceID, rtype, start, end.AddDays(-1))
	if err != nil {
		return nil, storeErr(err)
	}

	rates := make([]models.NightRate, 0, len(nights))
	for _, night := range nights {
		base := baseFor(night)
		if base <= 0 {
			return nil, reject(CodeInvalidBasePrice, "base price for %s must be positive, got %s", night, base)
		}
		winner, err := selectWinner(rules, resourceID, rtype, night)
		if err != nil {
			return nil, err
		}
		price := base
		if winner != nil {
			price = winner.Apply(base)
		}
		rates = append(rates, models.NightRate{Date: night, Price: price})
	}
	return rates, nil
}

// selectWinner picks the single applicable rule for one date, or nil when no
// rule matches. The tiebreak order is priority, then scope specificity, then
// creation time; an exact tie on all three is RULE_RESOLUTION_AMBIGUOUS.
func selectWinner(rules []models.PriceRule, resourceID string, rtype models.ResourceType, date models.Day) (*models.PriceRule, error) {
	var winner *models.PriceRule
	ambiguous := false

	for i := range rules {
		r := &rules[i]
		if !r.Active || !r.Covers(date) || !r.AppliesTo(resourceID, rtype) {
			continue
		}
		if winner == nil {
			winner = r
			continue
		}
		switch compareRules(r, winner) {
		case 1:
			winner = r
			ambiguous = false
		case 0:
			ambiguous = true
		}
	}

	if ambiguous {
		return nil, reject(CodeRuleAmbiguous,
			"multiple price rules tie on priority, scope, and creation time for %s on %s", resourceID, date)
	}
	return winner, nil
}

// compareRules returns 1 if a beats b, -1 if b beats a, and 0 on an exact
// tie across every tiebreak dimension.
func compareRules(a, b *models.PriceRule) int {
	if a.Priority != b.Priority {
		if a.Priority > b.Priority {
			return 1
		}
		return -1
	}
	if a.ResourceSpecific() != b.ResourceSpecific() {
		if a.ResourceSpecific() {
			return 1
		}
		return -1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.After(b.CreatedAt) {
			return 1
		}
		return -1
	}
	return 0
}

// SumNights totals a per-night rate breakdown. Each night is already rounded
// to whole cents, so the sum cannot drift.
func SumNights(rates []models.NightRate) models.Cents {
	var total models.Cents
	for _, r := range rates {
		total += r.Price
	}
	return total
}
