package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPage    = 0
	DefaultSize    = 20
	MaxSize        = 100
	tiebreakColumn = "id"
)

// Scope is a single optional filter predicate over a gorm query.
// Scopes compose with logical AND via db.Scopes; composition is
// associative and order-independent.
type Scope = func(db *gorm.DB) *gorm.DB

// Identity contributes no constraint. Absent filters resolve to it.
func Identity() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db
	}
}

// EqString matches column = value, or everything when value is nil.
func EqString(column string, value *string) Scope {
	if value == nil {
		return Identity()
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s = ?", column), v)
	}
}

// EqUUID matches column = value, or everything when value is nil.
func EqUUID(column string, value *uuid.UUID) Scope {
	if value == nil {
		return Identity()
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s = ?", column), v)
	}
}

// Page is a normalized pagination window.
type Page struct {
	Number int // 0-based
	Size   int
}

// NormalizePage clamps raw page inputs into a valid window.
// Negative pages become 0, non-positive sizes fall back to the
// default, and sizes above MaxSize are capped rather than rejected.
func NormalizePage(number, size int) Page {
	if number < 0 {
		number = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// Sort is a validated (column, direction) pair. Column is a real
// database column taken from the caller's allow-list, never raw input.
type Sort struct {
	Column    string
	Direction string
}

// InvalidSortFieldError reports a sort field outside the allow-list.
type InvalidSortFieldError struct {
	Field string
}

func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("unknown sort field %q", e.Field)
}

// ParseSort parses "field,direction". Direction is case-insensitive
// asc/desc and defaults to asc when omitted or unrecognized. The
// allowed map translates exposed field names to database columns;
// fields outside it yield an InvalidSortFieldError. An empty raw
// string means no explicit order.
func ParseSort(raw string, allowed map[string]string) (*Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	field := raw
	direction := "ASC"
	if i := strings.Index(raw, ","); i >= 0 {
		field = strings.TrimSpace(raw[:i])
		if strings.EqualFold(strings.TrimSpace(raw[i+1:]), "desc") {
			direction = "DESC"
		}
	}

	column, ok := allowed[field]
	if !ok {
		return nil, &InvalidSortFieldError{Field: field}
	}

	return &Sort{Column: column, Direction: direction}, nil
}

// OrderClause renders the ORDER BY expression with a stable id
// tiebreak so equal keys paginate deterministically.
func (s *Sort) OrderClause() string {
	if s == nil {
		return tiebreakColumn
	}
	if s.Column == tiebreakColumn {
		return s.Column + " " + s.Direction
	}
	return fmt.Sprintf("%s %s, %s", s.Column, s.Direction, tiebreakColumn)
}

// Paginate counts the rows matching scopes, then fetches the window
// [page*size, page*size+size) under the same scopes and order. Both
// reads share one predicate set so the count never drifts from the
// page contents.
func Paginate[T any](ctx context.Context, db *gorm.DB, scopes []Scope, sort *Sort, page Page) ([]T, int64, error) {
	var model T

	var total int64
	if err := db.WithContext(ctx).Model(&model).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0, page.Size)
	if total == 0 {
		return items, 0, nil
	}

	err := db.WithContext(ctx).
		Model(&model).
		Scopes(scopes...).
		Order(sort.OrderClause()).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
