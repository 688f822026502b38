package wizard

// The category picker is a fixed two-level catalog, not server-driven:
// four top-level service categories with five service types each.
// Selecting a service type sets both fields of the draft at once.

type CatalogEntry struct {
	Category string   `json:"category"`
	Types    []string `json:"types"`
}

var serviceCatalog = []CatalogEntry{
	{
		Category: "Home Maintenance and Repairs",
		Types:    []string{"Plumbing", "Electrical", "Carpentry", "Painting", "Appliance Repair"},
	},
	{
		Category: "Cleaning Services",
		Types:    []string{"House Cleaning", "Deep Cleaning", "Carpet Cleaning", "Window Cleaning", "Move-Out Cleaning"},
	},
	{
		Category: "Landscaping and Outdoor Work",
		Types:    []string{"Lawn Mowing", "Gardening", "Tree Trimming", "Fence Repair", "Snow Removal"},
	},
	{
		Category: "Moving and Delivery",
		Types:    []string{"Local Moving", "Furniture Delivery", "Packing Help", "Junk Removal", "Courier Service"},
	},
}

// Catalog returns the static service catalog.
func Catalog() []CatalogEntry {
	return serviceCatalog
}

// CatalogContains reports whether serviceType is a valid type under
// category.
func CatalogContains(category, serviceType string) bool {
	for _, entry := range serviceCatalog {
		if entry.Category != category {
			continue
		}
		for _, t := range entry.Types {
			if t == serviceType {
				return true
			}
		}
	}
	return false
}
