package engine

import (
	"fmt"
	"strings"

	"motorlog/internal/models"
)

// Catalog holds the validated maintenance reference data. Building one from
// unvalidated rows is the only place configuration errors can surface; after
// NewCatalog succeeds every item is safe for interval math.
type Catalog struct {
	items      []models.CatalogItem
	byCategory map[models.VehicleCategory][]models.CatalogItem
}

func NewCatalog(items []models.CatalogItem) (*Catalog, error) {
	byCategory := make(map[models.VehicleCategory][]models.CatalogItem)
	for _, item := range items {
		if err := ValidateCatalogItem(item); err != nil {
			return nil, err
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	return &Catalog{items: items, byCategory: byCategory}, nil
}

// ValidateCatalogItem checks the catalog invariants: at least one interval,
// non-negative costs and min <= max.
func ValidateCatalogItem(item models.CatalogItem) error {
	if item.KmInterval == nil && item.MonthInterval == nil {
		return fmt.Errorf("catalog item %q (%s): no km or month interval defined", item.Name, item.Category)
	}
	if item.KmInterval != nil && *item.KmInterval <= 0 {
		return fmt.Errorf("catalog item %q (%s): km interval must be positive", item.Name, item.Category)
	}
	if item.MonthInterval != nil && *item.MonthInterval <= 0 {
		return fmt.Errorf("catalog item %q (%s): month interval must be positive", item.Name, item.Category)
	}
	if item.MinCost < 0 || item.MaxCost < 0 {
		return fmt.Errorf("catalog item %q (%s): negative cost range", item.Name, item.Category)
	}
	if item.MinCost > item.MaxCost {
		return fmt.Errorf("catalog item %q (%s): min cost %.2f exceeds max cost %.2f", item.Name, item.Category, item.MinCost, item.MaxCost)
	}
	return nil
}

// ItemsFor returns the catalog items applicable to a vehicle category.
func (c *Catalog) ItemsFor(category models.VehicleCategory) []models.CatalogItem {
	return c.byCategory[category]
}

func (c *Catalog) Items() []models.CatalogItem {
	return c.items
}

// normalizeService folds a free-text service description for matching.
func normalizeService(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// serviceMatchesItem reports whether a maintenance record description refers
// to a catalog item. Descriptions are workshop-entered free text, so matching
// is containment on the normalized strings rather than strict equality.
func serviceMatchesItem(description, itemName string) bool {
	desc := normalizeService(description)
	name := normalizeService(itemName)
	if desc == "" || name == "" {
		return false
	}
	return strings.Contains(desc, name) || strings.Contains(name, desc)
}
