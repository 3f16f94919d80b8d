package models

import "time"

// PriceRule is a date-bounded price modifier maintained by admins and read
// by the pricing resolver. A rule either scales the base price with
// Multiplier or replaces it with OverridePrice.
type PriceRule struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	ResourceID    string       `bson:"resource_id,omitempty" json:"resource_id,omitempty"` // empty means type-wide
	ResourceType  ResourceType `bson:"resource_type" json:"resource_type"`
	StartDate     Day          `bson:"start_date" json:"start_date"` // inclusive
	EndDate       Day          `bson:"end_date" json:"end_date"`     // inclusive
	Multiplier    float64      `bson:"multiplier,omitempty" json:"multiplier,omitempty"`
	OverridePrice *Cents       `bson:"override_price,omitempty" json:"override_price,omitempty"`
	Priority      int          `bson:"priority" json:"priority"`
	Active        bool         `bson:"active" json:"active"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updated_at"`
}

// Covers reports whether the rule's inclusive date range contains d.
func (r *PriceRule) Covers(d Day) bool {
	return !d.Before(r.StartDate) && !r.EndDate.Before(d)
}

// AppliesTo reports whether the rule's scope matches the given resource.
func (r *PriceRule) AppliesTo(resourceID string, rtype ResourceType) bool {
	if r.ResourceID != "" {
		return r.ResourceID == resourceID
	}
	return r.ResourceType == rtype
}

// ResourceSpecific reports whether the rule targets a single resource rather
// than a whole resource type. Specific rules win priority ties.
func (r *PriceRule) ResourceSpecific() bool {
	return r.ResourceID != ""
}

// Apply produces the final price for one unit given a base price.
func (r *PriceRule) Apply(base Cents) Cents {
	if r.OverridePrice != nil {
		return *r.OverridePrice
	}
	return base.MulRound(r.Multiplier)
}
