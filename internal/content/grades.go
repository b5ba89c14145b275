package content

import (
	"slices"
	"strconv"
)

// GradePlaceholder is shown instead of an average for pass/fail subjects.
const GradePlaceholder = "-"

// Semester pairs a parsed key with its record.
type Semester struct {
	Key    SemesterKey
	Record SemesterRecord
}

// Semesters returns the entry's grade table, most recent semester first.
// Keys that fail to parse sort after valid ones by raw string; NewStore
// rejects them, so this only matters for unvalidated entries.
func (e EducationEntry) Semesters() []Semester {
	out := make([]Semester, 0, len(e.Grades))
	for raw, rec := range e.Grades {
		key, err := ParseSemesterKey(raw)
		if err != nil {
			key = SemesterKey{Raw: raw}
		}
		out = append(out, Semester{Key: key, Record: rec})
	}
	slices.SortFunc(out, func(a, b Semester) int {
		switch {
		case a.Key.After(b.Key):
			return -1
		case b.Key.After(a.Key):
			return 1
		case a.Key.Raw > b.Key.Raw:
			return -1
		case a.Key.Raw < b.Key.Raw:
			return 1
		}
		return 0
	})
	return out
}

// AverageDisplay formats the subject's grade point with one decimal place,
// or the placeholder for pass/fail subjects.
func (s SubjectGrade) AverageDisplay() string {
	if s.PassFail {
		return GradePlaceholder
	}
	return strconv.FormatFloat(s.GPA, 'f', 1, 64)
}

// CreditsDisplay drops the fractional part when it is zero.
func (s SubjectGrade) CreditsDisplay() string {
	return strconv.FormatFloat(s.Credits, 'f', -1, 64)
}
