// Package catalog models the showcase's products and the product dropdown of
// the contact form, and checks that the two agree.
//
// A Catalog is the ordered list of product cards. A Dropdown is the ordered
// list of select options: a disabled placeholder, one entry per available
// product labelled "<name> - $<price>", and a catch-all "other" entry.
//
// DeriveDropdown builds the dropdown straight from the catalog, so pages
// rendered by this module are consistent by construction.
// ValidateConsistency exists for lists authored independently, such as a
// hand-maintained static page read back with page.Extract:
//
//	c, _ := catalog.Default()
//	if err := catalog.ValidateConsistency(c, dropdown); err != nil {
//	    if me, ok := catalog.AsMismatch(err); ok {
//	        for _, p := range me.Problems {
//	            fmt.Println(p)
//	        }
//	    }
//	}
//
// Catalogs are read from YAML with Load or LoadFile; Default returns the one
// embedded in the binary. Prices are decimals and must be positive whole
// amounts, since cards and labels render them as integers.
package catalog
