// File: database/repository/pricerule/interface.go
package priceruleRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no rule matches the given id.
var ErrNotFound = errors.New("price rule not found")

// PriceRuleRepository owns price rule records. The booking engine only ever
// reads; creation and edits come from the admin surface.
type PriceRuleRepository interface {
	Create(ctx context.Context, rule *models.PriceRule) error
	GetByID(ctx context.Context, id string) (*models.PriceRule, error)
	// ListActive returns active rules whose inclusive date range intersects
	// [from, to] and whose scope can match the given resource: either the
	// specific resource id or its whole type.
	ListActive(ctx context.Context, resourceID string, rtype models.ResourceType, from, to models.Day) ([]models.PriceRule, error)
	List(ctx context.Context) ([]models.PriceRule, error)
	Update(ctx context.Context, rule *models.PriceRule) error
	Deactivate(ctx context.Context, id string) error
}

type mongoPriceRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPriceRuleRepo constructs a MongoDB-backed PriceRuleRepository.
func NewMongoPriceRuleRepo() PriceRuleRepository {
	return &mongoPriceRuleRepo{coll: database.DB().Collection("price_rules")}
}
