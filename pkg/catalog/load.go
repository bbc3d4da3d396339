package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Available   bool   `yaml:"available"`
}

type file struct {
	Products []fileProduct `yaml:"products"`
}

// Load decodes a YAML catalog and validates it.
func Load(r io.Reader) (Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Join(ErrDecodeCatalog, err)
	}

	c := make(Catalog, 0, len(f.Products))
	for i, fp := range f.Products {
		price, err := decimal.NewFromString(fp.Price)
		if err != nil {
			return nil, errors.Join(ErrDecodeCatalog, fmt.Errorf("products[%d].price %q: %w", i, fp.Price, err))
		}
		c = append(c, Product{
			Name:        fp.Name,
			Description: fp.Description,
			Price:       price,
			Available:   fp.Available,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCat  Catalog
	defaultErr  error
)

// Default returns the catalog embedded in the binary. Callers get their own copy.
func Default() (Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(defaultCatalog))
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	out := make(Catalog, len(defaultCat))
	copy(out, defaultCat)
	return out, nil
}

// MustDefault is like Default but panics when the embedded catalog is invalid.
func MustDefault() Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}
