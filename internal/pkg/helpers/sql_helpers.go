package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// A nil pointer becomes an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetContentNullString converts a string value to sql.NullString.
// An empty string becomes an empty NullString.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringPtrFromNull converts sql.NullString back to a string pointer.
func StringPtrFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
