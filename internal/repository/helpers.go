package repository

import (
	"database/sql"
	"fmt"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// Argument helpers: optional model fields to sql arguments

func dateArg(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func intArg(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func int64Arg(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func strArg(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// Scan helpers: nullable columns back to optional model fields

func datePtr(ns sql.NullString) (*models.Date, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := models.ParseDate(ns.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored date: %w", err)
	}
	return &d, nil
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
