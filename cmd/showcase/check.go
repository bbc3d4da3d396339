package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/page"
)

// check validates a catalog file, or a static HTML page, and prints every
// consistency problem found.
func check(cfg appConfig, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pagePath := fs.String("page", "", "HTML page to extract cards and options from")
	catalogPath := fs.String("catalog", cfg.CatalogPath, "catalog YAML file (default: embedded catalog)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var (
		products catalog.Catalog
		dropdown catalog.Dropdown
		source   string
	)

	if *pagePath != "" {
		f, err := os.Open(*pagePath)
		if err != nil {
			return err
		}
		defer f.Close()

		products, dropdown, err = page.Extract(f)
		if err != nil {
			return err
		}
		source = *pagePath
	} else {
		var err error
		products, err = loadCatalog(*catalogPath)
		if err != nil {
			return err
		}
		if err := products.Validate(); err != nil {
			return err
		}
		dropdown = catalog.DeriveDropdown(products)
		source = *catalogPath
		if source == "" {
			source = "embedded catalog"
		}
	}

	err := catalog.ValidateConsistency(products, dropdown)
	if mismatch, ok := catalog.AsMismatch(err); ok {
		fmt.Fprintf(stdout, "%s: %d problem(s)\n", source, len(mismatch.Problems))
		for _, p := range mismatch.Problems {
			fmt.Fprintf(stdout, "  - %s\n", p)
		}
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d products, %d options, consistent\n", source, len(products), len(dropdown))
	return nil
}
