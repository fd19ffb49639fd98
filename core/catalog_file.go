package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/huangsam/scorecard/schema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned for catalog documents that cannot be used.
var ErrInvalidCatalog = errors.New("invalid catalog")

// catalogDocument is the YAML form of a custom catalog file.
type catalogDocument struct {
	Pre  []schema.Category `yaml:"pre"`
	Post []schema.Category `yaml:"post"`
}

// ReadCatalogs decodes a custom catalog document. A phase left out of the document
// falls back to the matching built-in catalog.
func ReadCatalogs(r io.Reader) (CatalogSet, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return CatalogSet{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	set := DefaultCatalogs()
	if doc.Pre != nil {
		if err := checkCategories(schema.PrePhase, doc.Pre); err != nil {
			return CatalogSet{}, err
		}
		set.Pre = NewCatalog(schema.PrePhase, doc.Pre)
	}
	if doc.Post != nil {
		if err := checkCategories(schema.PostPhase, doc.Post); err != nil {
			return CatalogSet{}, err
		}
		set.Post = NewCatalog(schema.PostPhase, doc.Post)
	}
	return set, nil
}

// LoadCatalogs reads a custom catalog file, or returns the built-in catalogs when path is empty.
func LoadCatalogs(path string) (CatalogSet, error) {
	if path == "" {
		return DefaultCatalogs(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return CatalogSet{}, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadCatalogs(f)
}

// checkCategories rejects blank, duplicate or reserved names and unknown campaign types.
func checkCategories(phase schema.Phase, categories []schema.Category) error {
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: %s category without a name", ErrInvalidCatalog, phase)
		}
		if slices.Contains(schema.ReportSectionTitles, cat.Name) {
			return fmt.Errorf("%w: category name '%s' is reserved for a report section", ErrInvalidCatalog, cat.Name)
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("%w: duplicate %s category '%s'", ErrInvalidCatalog, phase, cat.Name)
		}
		seen[cat.Name] = struct{}{}

		if cat.RequiresCampaignType != "" {
			if _, ok := schema.ValidCampaignTypes[cat.RequiresCampaignType]; !ok {
				return fmt.Errorf("%w: category '%s' requires unknown campaign type '%s'", ErrInvalidCatalog, cat.Name, cat.RequiresCampaignType)
			}
		}

		metrics := make(map[string]struct{}, len(cat.Metrics))
		for _, m := range cat.Metrics {
			if m == "" {
				return fmt.Errorf("%w: blank metric in category '%s'", ErrInvalidCatalog, cat.Name)
			}
			if _, dup := metrics[m]; dup {
				return fmt.Errorf("%w: duplicate metric '%s' in category '%s'", ErrInvalidCatalog, m, cat.Name)
			}
			metrics[m] = struct{}{}
		}
	}
	return nil
}
