// Package catalog holds the static service catalog and the lookup tables
// used to resolve form selections into display labels. Everything here is
// read-only after init; callers receive copies or never mutate.
package catalog

// Service describes one offering in the consultancy's catalog. The ID is
// what the wizard stores; Title is what goes into outbound emails.
type Service struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	StartingPrice string   `json:"starting_price"`
	Timeline      string   `json:"timeline"`
	Examples      []string `json:"examples"`
}

// Option is a selectable budget or timeline bracket.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// PortfolioItem is a showcase entry on the marketing site.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Catalog bundles the lookup tables so they can be injected instead of
// reached for as package globals.
type Catalog struct {
	services  []Service
	budgets   []Option
	timelines []Option
	timeSlots []string
	portfolio []PortfolioItem
}

// Default returns the production catalog.
func Default() *Catalog {
	return &Catalog{
		services:  services,
		budgets:   budgetRanges,
		timelines: timelineOptions,
		timeSlots: timeSlots,
		portfolio: portfolioItems,
	}
}

// Services returns the full service catalog.
func (c *Catalog) Services() []Service { return c.services }

// BudgetRanges returns the selectable budget brackets.
func (c *Catalog) BudgetRanges() []Option { return c.budgets }

// TimelineOptions returns the selectable delivery timelines.
func (c *Catalog) TimelineOptions() []Option { return c.timelines }

// TimeSlots returns the offered consultation slots.
func (c *Catalog) TimeSlots() []string { return c.timeSlots }

// Portfolio returns showcase items, optionally filtered by category.
// An empty or "all" category returns everything.
func (c *Catalog) Portfolio(category string) []PortfolioItem {
	if category == "" || category == "all" {
		return c.portfolio
	}
	filtered := make([]PortfolioItem, 0, len(c.portfolio))
	for _, item := range c.portfolio {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ServiceTitle resolves a service id to its display title. Unknown ids are
// returned as-is so a stale client never produces an empty label.
func (c *Catalog) ServiceTitle(id string) string {
	for _, s := range c.services {
		if s.ID == id {
			return s.Title
		}
	}
	return id
}

// BudgetLabel resolves a budget id to its display label, falling back to
// the raw id.
func (c *Catalog) BudgetLabel(id string) string {
	return optionLabel(c.budgets, id)
}

// TimelineLabel resolves a timeline id to its display label, falling back
// to the raw id.
func (c *Catalog) TimelineLabel(id string) string {
	return optionLabel(c.timelines, id)
}

// ValidService reports whether id names a known service.
func (c *Catalog) ValidService(id string) bool {
	for _, s := range c.services {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ValidBudget reports whether id names a known budget bracket.
func (c *Catalog) ValidBudget(id string) bool { return hasOption(c.budgets, id) }

// ValidTimeline reports whether id names a known timeline.
func (c *Catalog) ValidTimeline(id string) bool { return hasOption(c.timelines, id) }

// ValidTimeSlot reports whether slot is one of the offered slots.
func (c *Catalog) ValidTimeSlot(slot string) bool {
	for _, s := range c.timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func optionLabel(opts []Option, id string) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}
