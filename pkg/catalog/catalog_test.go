package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/validator"
)

func product(name string, price int64, available bool) catalog.Product {
	return catalog.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(price),
		Available:   available,
	}
}

func sampleCatalog() catalog.Catalog {
	return catalog.Catalog{
		product("Rainbow Sunset Painting", 150, true),
		product("Ocean Waves Painting", 200, true),
		product("Mountain Majesty", 250, false),
		product("Forest Dreams", 175, true),
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)
	require.NotEmpty(t, c)

	t.Run("names are pairwise distinct", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{}
		for _, p := range c {
			assert.False(t, seen[p.Name], "duplicate %q", p.Name)
			seen[p.Name] = true
		}
	})

	t.Run("has both available and sold products", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, catalog.ListAvailableProductNames(c))
		assert.NotEmpty(t, catalog.ListSoldProductNames(c))
		assert.Contains(t, catalog.ListAvailableProductNames(c), "Rainbow Sunset Painting")
	})

	t.Run("returns independent copies", func(t *testing.T) {
		t.Parallel()
		a := catalog.MustDefault()
		a[0].Name = "changed"
		b := catalog.MustDefault()
		assert.NotEqual(t, "changed", b[0].Name)
	})
}

func TestDeriveDropdown(t *testing.T) {
	t.Parallel()

	c := catalog.MustDefault()
	d := catalog.DeriveDropdown(c)

	t.Run("is consistent by construction", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, catalog.ValidateConsistency(c, d))
	})

	t.Run("placeholder first and other last", func(t *testing.T) {
		t.Parallel()
		require.GreaterOrEqual(t, len(d), 2)
		assert.True(t, d[0].IsPlaceholder())
		assert.True(t, d[0].Disabled)
		assert.Equal(t, catalog.PlaceholderLabel, d[0].Label)
		assert.True(t, d[len(d)-1].IsOther())
		_, hasPrice := catalog.ParsePriceToken(d[len(d)-1].Label)
		assert.False(t, hasPrice)
	})

	t.Run("available products appear exactly once, sold never", func(t *testing.T) {
		t.Parallel()
		counts := map[string]int{}
		for _, o := range d {
			counts[o.Value]++
		}
		for name := range catalog.ListAvailableProductNames(c) {
			assert.Equal(t, 1, counts[name], name)
		}
		for name := range catalog.ListSoldProductNames(c) {
			assert.Zero(t, counts[name], name)
		}
	})

	t.Run("option prices match card prices", func(t *testing.T) {
		t.Parallel()
		for _, o := range d {
			price, ok := catalog.ParsePriceToken(o.Label)
			if !ok {
				continue
			}
			p, found := c.Find(o.Value)
			require.True(t, found, o.Value)
			assert.True(t, price.Equal(p.Price), o.Label)
		}
	})

	t.Run("labels", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Rainbow Sunset Painting - $150", catalog.OptionLabel(product("Rainbow Sunset Painting", 150, true)))
	})

	t.Run("values exclude placeholder", func(t *testing.T) {
		t.Parallel()
		values := d.Values()
		assert.NotContains(t, values, "")
		assert.Contains(t, values, catalog.OtherValue)
		assert.Contains(t, values, "Golden Fields")
	})
}

func TestListDropdownOptionNames(t *testing.T) {
	t.Parallel()

	d := catalog.Dropdown{
		{Value: "", Label: catalog.PlaceholderLabel, Disabled: true},
		{Value: "Forest Dreams", Label: "Forest Dreams - $175"},
		{Value: "other", Label: "Other"},
	}
	assert.Equal(t, map[string]struct{}{"Forest Dreams": {}}, catalog.ListDropdownOptionNames(d))
}

func TestValidateConsistency(t *testing.T) {
	t.Parallel()

	base := func() catalog.Dropdown {
		return catalog.DeriveDropdown(sampleCatalog())
	}

	tests := []struct {
		name    string
		catalog catalog.Catalog
		mutate  func(catalog.Dropdown) catalog.Dropdown
		kind    catalog.ProblemKind
		product string
	}{
		{
			name:   "available product missing",
			mutate: func(d catalog.Dropdown) catalog.Dropdown { return append(d[:1], d[2:]...) },
			kind:   catalog.MissingOption, product: "Rainbow Sunset Painting",
		},
		{
			name: "sold product listed",
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				return append(d, catalog.Option{Value: "Mountain Majesty", Label: "Mountain Majesty - $250"})
			},
			kind: catalog.SoldListed, product: "Mountain Majesty",
		},
		{
			name: "price mismatch",
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				d[1].Label = "Rainbow Sunset Painting - $140"
				return d
			},
			kind: catalog.PriceMismatch, product: "Rainbow Sunset Painting",
		},
		{
			name:    "grouped price mismatch",
			catalog: append(sampleCatalog(), product("Grand Canyon", 1200, true)),
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				return append(d, catalog.Option{Value: "Grand Canyon", Label: "Grand Canyon - $1,300"})
			},
			kind: catalog.PriceMismatch, product: "Grand Canyon",
		},
		{
			name: "unreadable price",
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				d[1].Label = "Rainbow Sunset Painting - $1,50"
				return d
			},
			kind: catalog.PriceMismatch, product: "Rainbow Sunset Painting",
		},
		{
			name: "unknown option",
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				return append(d, catalog.Option{Value: "Golden Fields", Label: "Golden Fields - $125"})
			},
			kind: catalog.UnknownOption, product: "Golden Fields",
		},
		{
			name: "duplicated option",
			mutate: func(d catalog.Dropdown) catalog.Dropdown {
				return append(d, d[1])
			},
			kind: catalog.DuplicateOption, product: "Rainbow Sunset Painting",
		},
		{
			name:    "duplicate product name",
			catalog: append(sampleCatalog(), product("Forest Dreams", 175, true)),
			mutate:  func(d catalog.Dropdown) catalog.Dropdown { return d },
			kind:    catalog.DuplicateName, product: "Forest Dreams",
		},
		{
			name:   "placeholder missing",
			mutate: func(d catalog.Dropdown) catalog.Dropdown { return d[1:] },
			kind:   catalog.MissingPlaceholder,
		},
		{
			name:   "other missing",
			mutate: func(d catalog.Dropdown) catalog.Dropdown { return d[:len(d)-1] },
			kind:   catalog.MissingOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := tt.catalog
			if c == nil {
				c = sampleCatalog()
			}

			err := catalog.ValidateConsistency(c, tt.mutate(base()))
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrCatalogMismatch)

			me, ok := catalog.AsMismatch(err)
			require.True(t, ok)
			assert.True(t, me.Has(tt.kind, tt.product), me.Error())
		})
	}

	t.Run("options without price token skip price check", func(t *testing.T) {
		t.Parallel()
		d := base()
		d[1].Label = "Rainbow Sunset Painting"
		assert.NoError(t, catalog.ValidateConsistency(sampleCatalog(), d))
	})

	t.Run("grouped price matches", func(t *testing.T) {
		t.Parallel()
		c := append(sampleCatalog(), product("Grand Canyon", 1300, true))
		d := append(base(), catalog.Option{Value: "Grand Canyon", Label: "Grand Canyon - $1,300"})
		assert.NoError(t, catalog.ValidateConsistency(c, d))
	})

	t.Run("collects every problem", func(t *testing.T) {
		t.Parallel()
		d := catalog.Dropdown{{Value: "Mountain Majesty", Label: "Mountain Majesty - $1"}}
		err := catalog.ValidateConsistency(sampleCatalog(), d)
		me, ok := catalog.AsMismatch(err)
		require.True(t, ok)
		assert.True(t, me.Has(catalog.SoldListed, "Mountain Majesty"))
		assert.True(t, me.Has(catalog.MissingOption, "Ocean Waves Painting"))
		assert.True(t, me.Has(catalog.MissingPlaceholder, ""))
		assert.True(t, me.Has(catalog.MissingOther, ""))
		assert.Contains(t, err.Error(), "Mountain Majesty")
	})

	t.Run("non mismatch errors are not extracted", func(t *testing.T) {
		t.Parallel()
		_, ok := catalog.AsMismatch(errors.New("other"))
		assert.False(t, ok)
	})
}

func TestPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$150", catalog.FormatPrice(decimal.NewFromInt(150)))
	assert.Equal(t, "$175", catalog.FormatPrice(decimal.RequireFromString("175.00")))

	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"Rainbow Sunset Painting - $150", "150", true},
		{"Deluxe - $99.50 framed", "99.5", true},
		{catalog.PlaceholderLabel, "", false},
		{"Other / Custom Commission", "", false},
		{"costs $ 10", "", false},
		{"Grand Canyon - $1,300", "1300", true},
		{"Estate - $1,300,000", "1300000", true},
		{"Grand Canyon - $1,300.50", "1300.5", true},
		{"Grand Canyon - $1300", "1300", true},
		{"Golden Fields - $125, unframed", "125", true},
		{"cut short - $1,30", "", false},
		{"too many digits - $1,2345", "", false},
	}
	for _, tt := range tests {
		got, ok := catalog.ParsePriceToken(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		if tt.ok {
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), tt.label)
		}
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	p := product("Rainbow Sunset Painting", 150, true)
	assert.Equal(t, "rainbow-sunset-painting", p.Slug())
	assert.Equal(t, "salt-and-pepper-study", product("Salt & Pepper Study", 90, true).Slug())

	long := product(strings.Repeat("Ocean Waves ", 10), 90, true).Slug()
	assert.LessOrEqual(t, len(long), catalog.SlugMaxLength)
	assert.False(t, strings.HasSuffix(long, "-"))
	assert.Equal(t, "$150", p.DisplayPrice())
	assert.Equal(t, catalog.StatusAvailable, p.Status())
	assert.Equal(t, catalog.StatusSold, product("x", 1, false).Status())

	c := sampleCatalog()
	assert.Len(t, c.Available(), 3)
	_, ok := c.Find("Nope")
	assert.False(t, ok)
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, sampleCatalog().Validate())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, catalog.Catalog{}.Validate(), catalog.ErrEmptyCatalog)
	})

	t.Run("reports every field", func(t *testing.T) {
		t.Parallel()
		c := catalog.Catalog{
			{Name: "", Description: "", Price: decimal.Zero},
			{Name: "Fractional", Description: "d", Price: decimal.RequireFromString("10.5")},
			product("Twin", 10, true),
			product("Twin", 10, false),
		}
		err := c.Validate()
		require.ErrorIs(t, err, catalog.ErrInvalidCatalog)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("products[0].name"))
		assert.True(t, verrs.Has("products[0].description"))
		assert.True(t, verrs.Has("products[0].price"))
		assert.True(t, verrs.Has("products[1].price"))
		assert.True(t, verrs.Has("products[3].name"))
		assert.False(t, verrs.Has("products[2].name"))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("decodes products", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.Load(strings.NewReader(`
products:
  - name: Golden Fields
    description: Wheat in late summer.
    price: "125"
    available: true
  - name: Starry Night Sky
    description: Night over a village.
    price: 300
    available: false
`))
		require.NoError(t, err)
		require.Len(t, c, 2)
		assert.Equal(t, "Golden Fields", c[0].Name)
		assert.True(t, c[0].Price.Equal(decimal.NewFromInt(125)))
		assert.True(t, c[1].Price.Equal(decimal.NewFromInt(300)))
		assert.False(t, c[1].Available)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load(strings.NewReader(""))
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("bad price", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load(strings.NewReader("products:\n  - name: A\n    description: B\n    price: cheap\n"))
		assert.ErrorIs(t, err, catalog.ErrDecodeCatalog)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load(strings.NewReader("products:\n  - name: A\n    colour: red\n"))
		assert.ErrorIs(t, err, catalog.ErrDecodeCatalog)
	})

	t.Run("invalid product", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load(strings.NewReader("products:\n  - name: A\n    description: B\n    price: \"-1\"\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products:\n  - name: A\n    description: B\n    price: \"5\"\n    available: true\n"), 0o600))
		c, err := catalog.LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, c, 1)

		_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
