package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageRequest selects a 1-based page of Size rows. A Size of zero or less disables paging.
type PageRequest struct {
	Page int
	Size int
}

// paginate is a gorm scope skipping (Page-1)*Size rows and limiting to Size
func paginate(p PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Size <= 0 {
			return db
		}
		page := p.Page
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * p.Size).Limit(p.Size)
	}
}

// SortOrder is the direction of a sorted listing
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder maps "asc" to Ascending and anything else to Descending
func ParseSortOrder(value string) SortOrder {
	if strings.EqualFold(value, string(Ascending)) {
		return Ascending
	}
	return Descending
}

func orderBy(column string, order SortOrder) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order != Ascending}
}

// forUpdate locks the selected rows until the transaction ends. SQLite ignores it and serializes writers instead.
var forUpdate = clause.Locking{Strength: "UPDATE"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-folded LIKE pattern matching value anywhere
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}

// whereContainsAny matches rows where any of the columns contains value, ignoring case
func whereContainsAny(db *gorm.DB, value string, columns ...string) *gorm.DB {
	if value == "" {
		return db
	}
	pattern := containsPattern(value)
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, column := range columns {
		expr := "LOWER(" + column + `) LIKE ? ESCAPE '\'`
		if i == 0 {
			cond = cond.Where(expr, pattern)
		} else {
			cond = cond.Or(expr, pattern)
		}
	}
	return db.Where(cond)
}
