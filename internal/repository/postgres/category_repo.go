package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

type categoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new PostgreSQL-backed CategoryRepository.
func NewCategoryRepo(db *sqlx.DB) port.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) LoadAll(ctx context.Context) ([]domain.DocumentCategory, error) {
	categories := []domain.DocumentCategory{}
	err := r.db.SelectContext(ctx, &categories,
		"SELECT label, keywords, position FROM document_categories ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.LoadAll: %w", err)
	}
	for i := range categories {
		categories[i].Keywords = splitKeywords(categories[i].KeywordsRaw)
	}
	return categories, nil
}

// ReplaceAll swaps the whole table for the given set in one transaction.
// Position follows slice order.
func (r *categoryRepo) ReplaceAll(ctx context.Context, categories []domain.DocumentCategory) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("categoryRepo.ReplaceAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM document_categories"); err != nil {
		return fmt.Errorf("categoryRepo.ReplaceAll delete: %w", err)
	}

	for i, cat := range categories {
		raw := cat.KeywordsRaw
		if raw == "" {
			raw = strings.Join(cat.Keywords, ",")
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO document_categories (label, keywords, position) VALUES ($1, $2, $3)",
			cat.Label, raw, i)
		if err != nil {
			return fmt.Errorf("categoryRepo.ReplaceAll insert %q: %w", cat.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("categoryRepo.ReplaceAll commit: %w", err)
	}
	return nil
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
