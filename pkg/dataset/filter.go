package dataset

import "strings"

// FilterColumns returns the column names that do not match any of the
// provided skip patterns. Supports wildcard patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
func FilterColumns(columns []string, patterns []string) []string {
	result := make([]string, 0, len(columns))

	for _, column := range columns {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(column, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result = append(result, column)
		}
	}

	return result
}

// Skip returns a view of ds with the columns matching any of the patterns
// omitted. With no patterns the dataset is returned unchanged.
func Skip(ds Dataset, patterns []string) Dataset {
	if len(patterns) == 0 {
		return ds
	}
	return &skipped{Dataset: ds, columns: FilterColumns(ds.Columns(), patterns)}
}

type skipped struct {
	Dataset
	columns []string
}

func (s *skipped) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// matchesPattern checks if a column name matches a wildcard pattern.
func matchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(name, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		suffix := strings.TrimPrefix(pattern, "*")
		return strings.HasSuffix(name, suffix)
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(name, prefix)
	}

	return false
}
