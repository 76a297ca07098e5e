package domain

type SuiteCategory string

const (
	SuiteCategoryBalcony    SuiteCategory = "BALCONY"
	SuiteCategoryFamily     SuiteCategory = "FAMILY"
	SuiteCategoryCouple     SuiteCategory = "COUPLE"
	SuiteCategoryAccessible SuiteCategory = "ACCESSIBLE"
)

type Suite struct {
	ID         string
	Category   SuiteCategory
	PriceCents int64
	HasBalcony bool
	Accessible bool
}

// Catalog is the boat's fixed suite inventory. It is built once at startup
// and never mutated, so it is safe to share between goroutines.
type Catalog struct {
	suites  map[string]Suite
	members map[SuiteCategory][]string
}

func NewCatalog() *Catalog {
	all := []Suite{
		{ID: "201", Category: SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
		{ID: "202", Category: SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
		{ID: "203", Category: SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
		{ID: "204", Category: SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
		{ID: "303", Category: SuiteCategoryFamily, PriceCents: 100000},
		{ID: "304", Category: SuiteCategoryFamily, PriceCents: 100000},
		{ID: "301", Category: SuiteCategoryCouple, PriceCents: 90000},
		{ID: "205", Category: SuiteCategoryCouple, PriceCents: 90000},
		{ID: "101", Category: SuiteCategoryAccessible, PriceCents: 80000, Accessible: true},
	}

	c := &Catalog{
		suites:  make(map[string]Suite, len(all)),
		members: make(map[SuiteCategory][]string),
	}
	for _, s := range all {
		c.suites[s.ID] = s
		c.members[s.Category] = append(c.members[s.Category], s.ID)
	}
	return c
}

// SuitesOf returns the suite ids of a category in declaration order.
// An unknown category yields an empty slice, not an error.
func (c *Catalog) SuitesOf(category SuiteCategory) []string {
	ids := c.members[category]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (c *Catalog) InfoOf(suiteID string) (*Suite, error) {
	s, ok := c.suites[suiteID]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (c *Catalog) Categories() []SuiteCategory {
	return []SuiteCategory{
		SuiteCategoryBalcony,
		SuiteCategoryFamily,
		SuiteCategoryCouple,
		SuiteCategoryAccessible,
	}
}
