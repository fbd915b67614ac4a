package models

// TransactionFilters contains filtering options for transaction queries.
// Search and Month/Year are alternative filter modes: when both are
// supplied the free-text search wins. Zero values mean "not set".
type TransactionFilters struct {
	Search string
	Month  int
	Year   int
	Offset int
	Limit  int
}

// HasSearch reports whether a free-text term is present
func (f TransactionFilters) HasSearch() bool {
	return f.Search != ""
}

// HasPeriod reports whether a month/year pair is present
func (f TransactionFilters) HasPeriod() bool {
	return f.Month != 0 || f.Year != 0
}
