// Package catalog supplies the products that prism filters: the built-in
// demonstration set, or a TOML file of [[product]] tables.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/prism/internal/product"
)

// ErrEmptyName is returned when a catalog entry has no name.
var ErrEmptyName = errors.New("product name is empty")

// File is the on-disk shape of a catalog.
type File struct {
	Products []product.Product `toml:"product"`
}

// Sample returns the demonstration products.
func Sample() []product.Product {
	return []product.Product{
		product.New("Apple", product.Green, product.Small),
		product.New("Tree", product.Green, product.Large),
		product.New("House", product.Blue, product.Large),
		product.New("Big Tree", product.Green, product.Large),
	}
}

// Load reads the catalog at path. An empty path selects Sample.
func Load(path string) ([]product.Product, error) {
	if path == "" {
		return Sample(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if err := validate(f.Products); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return f.Products, nil
}

// Save writes products to path as a catalog file, creating parent
// directories as needed.
func Save(path string, products []product.Product) error {
	if err := validate(products); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(File{Products: products})
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}
	return nil
}

func validate(products []product.Product) error {
	for i, p := range products {
		if p.Name == "" {
			return fmt.Errorf("product %d: %w", i+1, ErrEmptyName)
		}
	}
	return nil
}
