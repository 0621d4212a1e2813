// Package refdata loads the engine's fixed reference data: the
// document-category keyword table and the bilingual month-name table.
// Embedded defaults ship with the binary; external JSON files or the database
// can override them without touching the matching algorithms.
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

//go:embed data/categories.json
var defaultCategoriesJSON []byte

//go:embed data/months.json
var defaultMonthsJSON []byte

// LoadCategories reads the category keyword table from path, or the embedded
// defaults when path is empty.
func LoadCategories(path string) ([]verify.Category, error) {
	raw := defaultCategoriesJSON
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading category table %s: %w", path, err)
		}
	}
	var categories []verify.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parsing category table: %w", err)
	}
	return categories, nil
}

// LoadMonths reads the month-variant table from path, or the embedded
// defaults when path is empty.
func LoadMonths(path string) ([]verify.MonthVariant, error) {
	raw := defaultMonthsJSON
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading month table %s: %w", path, err)
		}
	}
	var months []verify.MonthVariant
	if err := json.Unmarshal(raw, &months); err != nil {
		return nil, fmt.Errorf("parsing month table: %w", err)
	}
	return months, nil
}

// CategoriesFromRecords converts database category records into classifier
// categories, splitting the comma-separated keyword column.
func CategoriesFromRecords(records []domain.DocumentCategory) []verify.Category {
	out := make([]verify.Category, 0, len(records))
	for _, rec := range records {
		keywords := rec.Keywords
		if len(keywords) == 0 && rec.KeywordsRaw != "" {
			for _, kw := range strings.Split(rec.KeywordsRaw, ",") {
				kw = strings.TrimSpace(kw)
				if kw != "" {
					keywords = append(keywords, kw)
				}
			}
		}
		out = append(out, verify.Category{Label: rec.Label, Keywords: keywords})
	}
	return out
}
