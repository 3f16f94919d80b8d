package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"resortly/models"
)

func cptr(c models.Cents) *models.Cents { return &c }

func holidayRule(id string, priority int, created time.Time) models.PriceRule {
	return models.PriceRule{
		ID:           id,
		Name:         "summer holiday",
		ResourceType: models.ResourceExclusive,
		StartDate:    "2026-07-01",
		EndDate:      "2026-07-31",
		Multiplier:   1.5,
		Priority:     priority,
		Active:       true,
		CreatedAt:    created,
	}
}

func TestResolvePriceRangeAppliesRulePerNight(t *testing.T) {
	rules := &fakePriceRuleRepo{rules: []models.PriceRule{
		holidayRule("rule-1", 10, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}}
	resolver := &PriceRuleResolver{Rules: rules}

	// Two nights inside the holiday window, one night after it.
	rates, err := resolver.ResolvePriceRange(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-30", "2026-08-02")
	if err != nil {
		t.Fatalf("ResolvePriceRange: %v", err)
	}
	want := []models.Cents{15000, 15000, 10000}
	if len(rates) != len(want) {
		t.Fatalf("got %d nights, want %d", len(rates), len(want))
	}
	for i, w := range want {
		if rates[i].Price != w {
			t.Errorf("night %s: got %s, want %s", rates[i].Date, rates[i].Price, w)
		}
	}
	if total := SumNights(rates); total != 40000 {
		t.Errorf("total: got %s, want 400.00", total)
	}
}

func TestResolvePriceIsDeterministic(t *testing.T) {
	rules := &fakePriceRuleRepo{rules: []models.PriceRule{
		holidayRule("rule-1", 10, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}}
	resolver := &PriceRuleResolver{Rules: rules}

	for i := 0; i < 5; i++ {
		price, err := resolver.ResolvePrice(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-15")
		if err != nil {
			t.Fatalf("ResolvePrice: %v", err)
		}
		if price != 15000 {
			t.Fatalf("attempt %d: got %s, want 150.00", i, price)
		}
	}
}

func TestResolvePriceTiebreaks(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		rules []models.PriceRule
		want  models.Cents
	}{
		{
			name: "higher priority wins",
			rules: []models.PriceRule{
				{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(20000), Priority: 5, Active: true, CreatedAt: early},
				{ID: "b", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(30000), Priority: 9, Active: true, CreatedAt: early},
			},
			want: 30000,
		},
		{
			name: "resource-specific beats type-wide on equal priority",
			rules: []models.PriceRule{
				{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(20000), Priority: 5, Active: true, CreatedAt: early},
				{ID: "b", ResourceID: "chalet-1", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(25000), Priority: 5, Active: true, CreatedAt: early},
			},
			want: 25000,
		},
		{
			name: "later creation wins on equal priority and scope",
			rules: []models.PriceRule{
				{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(20000), Priority: 5, Active: true, CreatedAt: early},
				{ID: "b", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(22000), Priority: 5, Active: true, CreatedAt: late},
			},
			want: 22000,
		},
		{
			name: "inactive rules never apply",
			rules: []models.PriceRule{
				{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(20000), Priority: 5, Active: false, CreatedAt: early},
			},
			want: 10000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &PriceRuleResolver{Rules: &fakePriceRuleRepo{rules: tt.rules}}
			price, err := resolver.ResolvePrice(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-15")
			if err != nil {
				t.Fatalf("ResolvePrice: %v", err)
			}
			if price != tt.want {
				t.Errorf("got %s, want %s", price, tt.want)
			}
		})
	}
}

func TestResolvePriceExactTieIsAmbiguous(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rules := &fakePriceRuleRepo{rules: []models.PriceRule{
		{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(20000), Priority: 5, Active: true, CreatedAt: created},
		{ID: "b", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", OverridePrice: cptr(30000), Priority: 5, Active: true, CreatedAt: created},
	}}
	resolver := &PriceRuleResolver{Rules: rules}

	_, err := resolver.ResolvePrice(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-15")
	if !IsCode(err, CodeRuleAmbiguous) {
		t.Errorf("expected RULE_RESOLUTION_AMBIGUOUS, got %v", err)
	}
}

func TestResolvePriceRoundsHalfUp(t *testing.T) {
	rules := &fakePriceRuleRepo{rules: []models.PriceRule{
		{ID: "a", ResourceType: models.ResourceExclusive, StartDate: "2026-07-01", EndDate: "2026-07-31", Multiplier: 1.15, Priority: 5, Active: true, CreatedAt: time.Now()},
	}}
	resolver := &PriceRuleResolver{Rules: rules}

	// 33.33 * 1.15 = 38.3295, rounds to 38.33.
	price, err := resolver.ResolvePrice(context.Background(), 3333, "chalet-1", models.ResourceExclusive, "2026-07-15")
	if err != nil {
		t.Fatalf("ResolvePrice: %v", err)
	}
	if price != 3833 {
		t.Errorf("got %s, want 38.33", price)
	}
}

func TestResolveNightlyUsesPerNightBase(t *testing.T) {
	resolver := &PriceRuleResolver{Rules: &fakePriceRuleRepo{}}
	chalet := &models.Chalet{BaseRate: 10000, WeekendRate: 14000}

	// 2026-07-09 is a Thursday; the stay covers Thu, Fri, Sat.
	rates, err := resolver.ResolveNightly(context.Background(), "chalet-1", models.ResourceExclusive, "2026-07-09", "2026-07-12", chalet.NightlyBase)
	if err != nil {
		t.Fatalf("ResolveNightly: %v", err)
	}
	want := []models.Cents{10000, 14000, 14000}
	for i, w := range want {
		if rates[i].Price != w {
			t.Errorf("night %s: got %s, want %s", rates[i].Date, rates[i].Price, w)
		}
	}
}

func TestResolveNightlyRejectsNonPositiveBase(t *testing.T) {
	resolver := &PriceRuleResolver{Rules: &fakePriceRuleRepo{}}

	_, err := resolver.ResolvePriceRange(context.Background(), 0, "chalet-1", models.ResourceExclusive, "2026-07-10", "2026-07-12")
	if !IsCode(err, CodeInvalidBasePrice) {
		t.Errorf("expected INVALID_BASE_PRICE, got %v", err)
	}
}

func TestResolveNightlyRejectsEmptyRange(t *testing.T) {
	resolver := &PriceRuleResolver{Rules: &fakePriceRuleRepo{}}

	_, err := resolver.ResolvePriceRange(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-12", "2026-07-12")
	if !IsCode(err, CodeInvalidRange) {
		t.Errorf("expected INVALID_RANGE, got %v", err)
	}
}

func TestResolveNightlyStoreFailure(t *testing.T) {
	resolver := &PriceRuleResolver{Rules: &fakePriceRuleRepo{listErr: errors.New("connection reset")}}

	_, err := resolver.ResolvePriceRange(context.Background(), 10000, "chalet-1", models.ResourceExclusive, "2026-07-10", "2026-07-12")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := AsRejection(err); ok {
		t.Errorf("store failures must not be typed rejections, got %v", err)
	}
}
