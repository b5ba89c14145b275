package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemestersMostRecentFirst(t *testing.T) {
	e := sampleContent().Resume.Education[0]
	var keys []string
	for _, s := range e.Semesters() {
		keys = append(keys, s.Key.Raw)
	}
	assert.Equal(t, []string{"2025-1", "2024-2", "2024-1"}, keys)
}

func TestSemestersOrderTwoDigitTermsNumerically(t *testing.T) {
	e := EducationEntry{Grades: map[string]SemesterRecord{"2024-2": {}, "2024-10": {}, "2023-11": {}}}
	var keys []string
	for _, s := range e.Semesters() {
		keys = append(keys, s.Key.Raw)
	}
	assert.Equal(t, []string{"2024-10", "2024-2", "2023-11"}, keys)
}

func TestSemestersEmpty(t *testing.T) {
	assert.Empty(t, EducationEntry{}.Semesters())
	assert.False(t, EducationEntry{}.HasGrades())
}

func TestSubjectAverageDisplay(t *testing.T) {
	assert.Equal(t, GradePlaceholder, SubjectGrade{PassFail: true, GPA: 4.5}.AverageDisplay())
	assert.Equal(t, "4.0", SubjectGrade{GPA: 3.95}.AverageDisplay())
	assert.Equal(t, "3.5", SubjectGrade{GPA: 3.5}.AverageDisplay())
}

func TestSubjectCreditsDisplay(t *testing.T) {
	assert.Equal(t, "3", SubjectGrade{Credits: 3}.CreditsDisplay())
	assert.Equal(t, "1.5", SubjectGrade{Credits: 1.5}.CreditsDisplay())
}
