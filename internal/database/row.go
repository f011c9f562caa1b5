package database

import "github.com/koustreak/dtogen/internal/errs"

// ScanStrings reads a single text column from every row.
//
// The returned slice is always non-nil (empty slice on zero rows).
// ScanStrings always closes the Rows, so callers do not need to call Close().
func ScanStrings(rows Rows) ([]string, error) {
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, errs.Wrap(errs.ErrKindQueryFailed, "failed to scan row", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrKindQueryFailed, "error during row iteration", err)
	}
	return result, nil
}
