package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/showcase/pkg/slug"
	"github.com/dmitrymomot/showcase/pkg/validator"
)

// Product is a single showcase item. Name is its natural identifier.
type Product struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"-"`
	Available   bool            `json:"available" yaml:"available"`
}

// SlugMaxLength bounds generated DOM ids and fragment links.
const SlugMaxLength = 64

var slugReplacements = map[string]string{"&": "and", "+": "plus"}

// Slug returns the URL and DOM friendly form of the product name.
func (p Product) Slug() string {
	return slug.Make(p.Name, slug.MaxLength(SlugMaxLength), slug.CustomReplace(slugReplacements))
}

// DisplayPrice renders the price the way cards and option labels show it.
func (p Product) DisplayPrice() string {
	return FormatPrice(p.Price)
}

// Status returns the label shown on the card for the product's availability.
func (p Product) Status() string {
	if p.Available {
		return StatusAvailable
	}
	return StatusSold
}

const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
)

// Catalog is the ordered list of products shown on the page.
type Catalog []Product

// Find returns the first product with the given name.
func (c Catalog) Find(name string) (Product, bool) {
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Available returns the products that can still be ordered, in catalog order.
func (c Catalog) Available() Catalog {
	out := make(Catalog, 0, len(c))
	for _, p := range c {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks per-product invariants: a name and description are present,
// the price is a positive whole amount, and names are unique.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}

	rules := make([]validator.Rule, 0, len(c)*4)
	seen := make(map[string]struct{}, len(c))

	for i, p := range c {
		field := func(name string) string { return fmt.Sprintf("products[%d].%s", i, name) }
		rules = append(rules,
			validator.Required(field("name"), p.Name),
			validator.Required(field("description"), p.Description),
			validator.PositiveDecimal(field("price"), p.Price),
			validator.WholeDecimal(field("price"), p.Price),
		)

		_, dup := seen[p.Name]
		rules = append(rules, unique(field("name"), p.Name, dup))
		seen[p.Name] = struct{}{}
	}

	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return nil
}

func unique(field, name string, dup bool) validator.Rule {
	return validator.Rule{
		Check: func() bool { return !dup },
		Error: validator.ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("duplicate product name %q", name),
			TranslationKey: "validation.unique",
			TranslationValues: map[string]any{
				"field": field,
				"value": name,
			},
		},
	}
}
