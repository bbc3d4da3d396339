package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ListAvailableProductNames returns the names of every product that can be ordered.
func ListAvailableProductNames(c Catalog) map[string]struct{} {
	out := make(map[string]struct{}, len(c))
	for _, p := range c {
		if p.Available {
			out[p.Name] = struct{}{}
		}
	}
	return out
}

// ListSoldProductNames returns the names of every sold product.
func ListSoldProductNames(c Catalog) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range c {
		if !p.Available {
			out[p.Name] = struct{}{}
		}
	}
	return out
}

// ListDropdownOptionNames returns the option values that stand for products,
// leaving out the placeholder and the catch-all.
func ListDropdownOptionNames(d Dropdown) map[string]struct{} {
	out := make(map[string]struct{}, len(d))
	for _, o := range d {
		if o.IsProduct() {
			out[o.Value] = struct{}{}
		}
	}
	return out
}

// ValidateConsistency checks the card list against an independently authored
// dropdown. Every problem is collected; the returned *MismatchError matches
// ErrCatalogMismatch.
//
// Available products must appear exactly once, sold products never, and
// options must not name products absent from the catalog. Only options whose
// label embeds a "$<digits>" token are price checked.
func ValidateConsistency(c Catalog, d Dropdown) error {
	var problems []Problem
	add := func(kind ProblemKind, product, format string, args ...any) {
		problems = append(problems, Problem{Kind: kind, Product: product, Detail: fmt.Sprintf(format, args...)})
	}

	byName := make(map[string]Product, len(c))
	for _, p := range c {
		if _, dup := byName[p.Name]; dup {
			add(DuplicateName, p.Name, "product name appears more than once in the catalog")
			continue
		}
		byName[p.Name] = p
	}

	var hasPlaceholder, hasOther bool
	optionCount := make(map[string]int, len(d))

	for _, o := range d {
		switch {
		case o.IsPlaceholder():
			hasPlaceholder = true
			continue
		case o.IsOther():
			hasOther = true
			continue
		}

		optionCount[o.Value]++
		if optionCount[o.Value] == 2 {
			add(DuplicateOption, o.Value, "option appears more than once in the dropdown")
		}

		p, known := byName[o.Value]
		if !known {
			add(UnknownOption, o.Value, "option has no matching product card")
			continue
		}
		if !p.Available {
			add(SoldListed, p.Name, "sold product is offered in the dropdown")
			continue
		}

		price, ok := ParsePriceToken(o.Label)
		switch {
		case ok && !price.Equal(p.Price):
			add(PriceMismatch, p.Name, "option shows %s, card shows %s", FormatPrice(price), FormatPrice(p.Price))
		case !ok && strings.Contains(o.Label, "$"):
			add(PriceMismatch, p.Name, "option label %q has no readable price, card shows %s", o.Label, FormatPrice(p.Price))
		}
	}

	available := ListAvailableProductNames(c)
	missing := make([]string, 0)
	for name := range available {
		if optionCount[name] == 0 {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		add(MissingOption, name, "available product is not offered in the dropdown")
	}

	if !hasPlaceholder {
		add(MissingPlaceholder, "", "dropdown has no placeholder entry")
	}
	if !hasOther {
		add(MissingOther, "", "dropdown has no %q entry", OtherValue)
	}

	if len(problems) == 0 {
		return nil
	}
	return &MismatchError{Problems: problems}
}
