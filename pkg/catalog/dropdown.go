package catalog

const (
	// PlaceholderValue is the value of the disabled "choose one" entry.
	PlaceholderValue = ""
	PlaceholderLabel = "-- Choose a painting --"

	// OtherValue is the value of the catch-all entry. It carries no price.
	OtherValue = "other"
	OtherLabel = "Other / Custom Commission"
)

// Option is one entry of the product select.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// IsPlaceholder reports whether the option is the "choose one" entry.
func (o Option) IsPlaceholder() bool {
	return o.Value == PlaceholderValue
}

// IsOther reports whether the option is the catch-all entry.
func (o Option) IsOther() bool {
	return o.Value == OtherValue
}

// IsProduct reports whether the option stands for a catalog product.
func (o Option) IsProduct() bool {
	return !o.IsPlaceholder() && !o.IsOther()
}

// Dropdown is the ordered option list of the product select.
type Dropdown []Option

// Values returns the selectable option values: every product entry plus
// the catch-all. The placeholder is never a valid choice.
func (d Dropdown) Values() []string {
	out := make([]string, 0, len(d))
	for _, o := range d {
		if o.IsPlaceholder() || o.Disabled {
			continue
		}
		out = append(out, o.Value)
	}
	return out
}

// OptionLabel returns the label a product gets in the dropdown: "<name> - $<price>".
func OptionLabel(p Product) string {
	return p.Name + " - " + FormatPrice(p.Price)
}

// DeriveDropdown builds the dropdown from the catalog: the placeholder, one
// entry per available product in catalog order, then the catch-all.
// The result satisfies ValidateConsistency for any catalog with unique names.
func DeriveDropdown(c Catalog) Dropdown {
	d := make(Dropdown, 0, len(c)+2)
	d = append(d, Option{Value: PlaceholderValue, Label: PlaceholderLabel, Disabled: true})
	for _, p := range c {
		if !p.Available {
			continue
		}
		d = append(d, Option{Value: p.Name, Label: OptionLabel(p)})
	}
	d = append(d, Option{Value: OtherValue, Label: OtherLabel})
	return d
}
