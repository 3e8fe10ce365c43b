// Package orm wraps gorm with a small chainable query API plus pagination
// helpers.
package orm

import (
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// New starts a query against an explicit gorm handle (tests inject an
// in-memory SQLite here).
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Transaction runs fn atomically: any returned error rolls everything back.
func Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(expr string) *Query {
	return &Query{db: q.db.Order(expr)}
}

func (q *Query) Preload(assoc string) *Query {
	return &Query{db: q.db.Preload(assoc)}
}

func (q *Query) Select(fields string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(fields, args...)}
}

func (q *Query) Joins(join string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(join, args...)}
}

func (q *Query) Group(expr string) *Query {
	return &Query{db: q.db.Group(expr)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Scan runs the built query into an arbitrary destination (aggregation rows).
func (q *Query) Scan(dest interface{}) error {
	return q.db.Scan(dest).Error
}
