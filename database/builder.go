package database

import (
	"strings"
	"time"
)

// Sort directions for OrderBy
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building select queries
type QueryBuilder[T any] struct {
	db *DB

	// Query clauses
	selectCols []string
	wheres     []*WhereClause
	orders     []*OrderClause
	limitVal   *int
	offsetVal  *int

	// Timeout
	timeout time.Duration
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	Values   []any // for IN clauses
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// Query creates a new QueryBuilder for the given model type
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Select restricts the selected columns
func (q *QueryBuilder[T]) Select(cols ...string) *QueryBuilder[T] {
	q.selectCols = append(q.selectCols, cols...)
	return q
}

// Where adds an equality condition
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "=", Value: value})
	return q
}

// WhereOp adds a condition with an explicit operator (>=, <=, <, >, !=)
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: operator, Value: value})
	return q
}

// WhereIn adds an IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IN", Values: values})
	return q
}

// WhereRaw adds a raw SQL condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// OrderBy adds an ORDER BY clause. Direction is case-insensitive and falls
// back to DESC when unrecognized.
func (q *QueryBuilder[T]) OrderBy(column, direction string) *QueryBuilder[T] {
	direction = strings.ToUpper(direction)
	if direction != ASC && direction != DESC {
		direction = DESC
	}
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: direction})
	return q
}

// Limit sets the maximum number of rows returned
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the number of rows skipped
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// WithTimeout applies a per-query timeout
func (q *QueryBuilder[T]) WithTimeout(d time.Duration) *QueryBuilder[T] {
	q.timeout = d
	return q
}
