package content

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ExperienceSeparator joins the two halves of an encoded ExperienceKey.
const ExperienceSeparator = "|"

// ExperienceKey identifies an experience entry by company and period.
type ExperienceKey struct {
	Company string
	Period  string
}

var keyEscaper = strings.NewReplacer("%", "%25", "|", "%7C")

// Encode renders the key as company|period. Percent signs and pipes inside
// either field are percent-encoded so the separator stays unambiguous.
func (k ExperienceKey) Encode() string {
	return keyEscaper.Replace(k.Company) + ExperienceSeparator + keyEscaper.Replace(k.Period)
}

func (k ExperienceKey) String() string {
	return k.Company + " (" + k.Period + ")"
}

// ParseExperienceKey is the inverse of Encode. The input is the already
// URL-decoded route parameter.
func ParseExperienceKey(id string) (ExperienceKey, error) {
	company, period, ok := strings.Cut(id, ExperienceSeparator)
	if !ok {
		return ExperienceKey{}, errors.Errorf("experience id %q has no %q separator", id, ExperienceSeparator)
	}
	if strings.Contains(period, ExperienceSeparator) {
		return ExperienceKey{}, errors.Errorf("experience id %q has more than one separator", id)
	}
	return ExperienceKey{Company: unescapeKeyPart(company), Period: unescapeKeyPart(period)}, nil
}

// unescapeKeyPart tolerates hand-written ids that contain a bare percent sign.
func unescapeKeyPart(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}

var semesterPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// SemesterKey is a grade table key of the form YYYY-T, e.g. "2025-1".
type SemesterKey struct {
	Raw  string
	Year int
	Term int
}

// ParseSemesterKey validates the YYYY-T format.
func ParseSemesterKey(raw string) (SemesterKey, error) {
	m := semesterPattern.FindStringSubmatch(raw)
	if m == nil {
		return SemesterKey{}, errors.Errorf("semester key %q must look like YYYY-T: a four digit year and a numeric term, e.g. \"2025-1\"", raw)
	}
	year, _ := strconv.Atoi(m[1])
	term, _ := strconv.Atoi(m[2])
	if term == 0 {
		return SemesterKey{}, errors.Errorf("semester key %q has term 0; terms start at 1, e.g. \"2025-1\"", raw)
	}
	return SemesterKey{Raw: raw, Year: year, Term: term}, nil
}

// After reports whether k is more recent than other.
func (k SemesterKey) After(other SemesterKey) bool {
	if k.Year != other.Year {
		return k.Year > other.Year
	}
	return k.Term > other.Term
}
