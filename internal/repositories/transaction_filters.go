package repositories

import (
	"errors"
	"strings"
	"time"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// TransactionPredicate narrows a transaction query to matching rows.
// Predicates are pure: they hold no state beyond their inputs and can be
// applied to any query, so a single predicate value is safe to share
// across goroutines.
type TransactionPredicate func(*gorm.DB) *gorm.DB

// ByFreeText matches transactions whose product name, supplier name or
// description contains the term, case-insensitively. An empty or
// whitespace-only term yields the identity predicate that matches every
// row.
func ByFreeText(term string) TransactionPredicate {
	term = strings.TrimSpace(term)
	if term == "" {
		return func(query *gorm.DB) *gorm.DB {
			return query
		}
	}

	pattern := "%" + strings.ToLower(term) + "%"
	return func(query *gorm.DB) *gorm.DB {
		return query.
			Joins("JOIN products ON products.id = transactions.product_id").
			Joins("JOIN suppliers ON suppliers.id = transactions.supplier_id").
			Where("LOWER(products.name) LIKE ? OR LOWER(suppliers.name) LIKE ? OR LOWER(transactions.description) LIKE ?",
				pattern, pattern, pattern)
	}
}

// ByMonthAndYear matches transactions created within the given calendar
// month, ignoring day and time of day. Month must be between 1 and 12;
// anything else returns ErrInvalidMonth rather than an empty result.
func ByMonthAndYear(month, year int) (TransactionPredicate, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	return func(query *gorm.DB) *gorm.DB {
		return query.Where("transactions.created_at >= ? AND transactions.created_at < ?", startDate, endDate)
	}, nil
}

// BuildTransactionPredicate resolves filter criteria into a single
// predicate. Free text takes precedence when both modes are supplied;
// absence of both means no filtering at all.
func BuildTransactionPredicate(filters models.TransactionFilters) (TransactionPredicate, error) {
	if filters.HasSearch() {
		return ByFreeText(filters.Search), nil
	}

	if filters.HasPeriod() {
		return ByMonthAndYear(filters.Month, filters.Year)
	}

	return nil, nil
}
