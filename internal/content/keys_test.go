package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceKeyRoundTrip(t *testing.T) {
	keys := []ExperienceKey{
		{Company: "Acme", Period: "2022 - 2024"},
		{Company: "Pipe|Works", Period: "2020|2021"},
		{Company: "100% Co", Period: "%7C"},
	}
	for _, k := range keys {
		got, err := ParseExperienceKey(k.Encode())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestParseExperienceKeyPlainID(t *testing.T) {
	got, err := ParseExperienceKey("Acme|2022 - 2024")
	require.NoError(t, err)
	assert.Equal(t, ExperienceKey{Company: "Acme", Period: "2022 - 2024"}, got)
}

func TestParseExperienceKeyRejectsAmbiguousIDs(t *testing.T) {
	_, err := ParseExperienceKey("Acme")
	assert.Error(t, err)
	_, err = ParseExperienceKey("a|b|c")
	assert.Error(t, err)
}

func TestParseSemesterKey(t *testing.T) {
	k, err := ParseSemesterKey("2025-1")
	require.NoError(t, err)
	assert.Equal(t, 2025, k.Year)
	assert.Equal(t, 1, k.Term)

	for _, bad := range []string{"2025", "25-1", "2025-0", "2025-spring", "2025-123"} {
		_, err := ParseSemesterKey(bad)
		assert.Error(t, err, bad)
	}
}
