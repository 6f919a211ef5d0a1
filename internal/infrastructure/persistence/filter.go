package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/shared"
)

// applyFilter applies search, ordering and pagination to a query.
// searchColumns name the text columns matched against Filter.Search.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applySearch(query, filter, searchColumns...)

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}

// applySearch applies the search and equality conditions, for count queries
func applySearch(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	for column, value := range filter.Filters {
		query = query.Where(column+" = ?", value)
	}

	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = col + " LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}
	return query
}
