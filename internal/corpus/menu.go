package corpus

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/textproc"
	"gopkg.in/yaml.v3"
)

type keyedMenuRecord struct {
	key string
	rec menuRecord
}

// parseMenu decodes menu.json keeping the key order of the file, which is
// the catalog iteration order. JSON is read through the YAML decoder
// because yaml.Node preserves mapping order.
func parseMenu(data []byte) ([]keyedMenuRecord, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeMalformed, Message: "parsing menu", Err: err}
	}
	if len(root.Content) == 0 {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeInvalid, Message: "menu is empty"}
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeMalformed, Message: "menu must be an object keyed by dish"}
	}

	out := make([]keyedMenuRecord, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		var rec menuRecord
		if err := doc.Content[i+1].Decode(&rec); err != nil {
			return nil, &LoadError{Source: MenuFile, Code: ErrCodeMalformed, Message: fmt.Sprintf("dish %q", key), Err: err}
		}
		out = append(out, keyedMenuRecord{key: key, rec: rec})
	}
	return out, nil
}

func validateMenuRecord(key string, r menuRecord) []error {
	var errs []error
	if strings.TrimSpace(key) == "" {
		errs = append(errs, fmt.Errorf("dish key is empty"))
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, fmt.Errorf("dish %q: name is required", key))
	}
	if r.Price <= 0 {
		errs = append(errs, fmt.Errorf("dish %q: price must be positive, got %d", key, r.Price))
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"spiciness", r.Spiciness},
		{"vegetarian", r.Vegetarian},
		{"saltiness", r.Saltiness},
		{"sweetness", r.Sweetness},
	} {
		if f.v == nil {
			errs = append(errs, fmt.Errorf("dish %q: %s is required", key, f.name))
		} else if math.IsNaN(*f.v) || *f.v < 0 || *f.v > 1 {
			errs = append(errs, fmt.Errorf("dish %q: %s must be in [0,1], got %v", key, f.name, *f.v))
		}
	}
	return errs
}

// buildCatalog validates every record, reports all problems at once, and
// precomputes normalized names.
func buildCatalog(records []keyedMenuRecord, p *textproc.Pipeline) (*domain.Catalog, error) {
	if len(records) == 0 {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeInvalid, Message: "menu has no dishes"}
	}

	var errs []error
	items := make([]domain.MenuItem, 0, len(records))
	for _, kr := range records {
		if e := validateMenuRecord(kr.key, kr.rec); len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		r := kr.rec
		nameLower := r.NameLower
		if nameLower == "" {
			nameLower = strings.ToLower(r.Name)
		}
		items = append(items, domain.MenuItem{
			Key:         kr.key,
			Name:        r.Name,
			NameLower:   nameLower,
			Price:       r.Price,
			Description: r.Description,
			Taste: domain.Taste{
				Spiciness:  *r.Spiciness,
				Vegetarian: *r.Vegetarian,
				Saltiness:  *r.Saltiness,
				Sweetness:  *r.Sweetness,
			},
			NormalizedName: p.Normalize(r.Name),
		})
	}
	if len(errs) > 0 {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeInvalid, Message: "menu validation failed", Err: errors.Join(errs...)}
	}

	catalog, err := domain.NewCatalog(items)
	if err != nil {
		return nil, &LoadError{Source: MenuFile, Code: ErrCodeInvalid, Message: "building catalog", Err: err}
	}
	return catalog, nil
}
