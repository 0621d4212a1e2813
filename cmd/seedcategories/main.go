// Command seedcategories loads the document-category keyword table into the
// database. With an Excel file argument it reads the registry-maintained
// sheet (column A = label, column B = comma-separated keywords); without one
// it seeds the embedded defaults.
// Usage: go run ./cmd/seedcategories [categories.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Theijiii/plms-sys-sub005/internal/config"
	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/refdata"
	"github.com/Theijiii/plms-sys-sub005/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var records []domain.DocumentCategory
	if len(os.Args) > 1 {
		records, err = parseSheet(os.Args[1])
		if err != nil {
			return err
		}
		log.Printf("parsed %d categories from %s", len(records), os.Args[1])
	} else {
		categories, err := refdata.LoadCategories("")
		if err != nil {
			return fmt.Errorf("load embedded categories: %w", err)
		}
		for _, cat := range categories {
			records = append(records, domain.DocumentCategory{
				Label:    cat.Label,
				Keywords: cat.Keywords,
			})
		}
		log.Printf("using %d embedded default categories", len(records))
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := postgres.NewCategoryRepo(db)
	if err := repo.ReplaceAll(context.Background(), records); err != nil {
		return fmt.Errorf("replace category table: %w", err)
	}

	log.Printf("seeded %d document categories", len(records))
	return nil
}

// parseSheet reads the first sheet. Row 1 is a header; data rows need a
// non-empty label and at least one keyword.
func parseSheet(path string) ([]domain.DocumentCategory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	seen := make(map[string]bool)
	var records []domain.DocumentCategory
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		keywordsRaw := strings.TrimSpace(row[1])
		if label == "" || keywordsRaw == "" {
			continue
		}
		if seen[label] {
			log.Printf("skipping duplicate label %q at row %d", label, i+1)
			continue
		}
		seen[label] = true
		records = append(records, domain.DocumentCategory{
			Label:       label,
			KeywordsRaw: keywordsRaw,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no usable category rows in %s", path)
	}
	return records, nil
}
