package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
)

func TestEveryIntentHasKeywords(t *testing.T) {
	for _, intent := range model.AllIntents {
		assert.NotEmpty(t, IntentKeywords(intent), "intent %s", intent)
	}
}

func TestPriorityOrder(t *testing.T) {
	assert.Equal(t, []model.Intent{model.IntentWeather, model.IntentBook, model.IntentEat}, PriorityIntents())
	for _, intent := range PriorityIntents() {
		assert.NotEmpty(t, PriorityPatterns(intent))
	}
}

func TestDestinationsIncludeFoldedVariants(t *testing.T) {
	var dalat Destination
	for _, d := range Destinations() {
		if d.Canonical == "đà lạt" {
			dalat = d
		}
	}
	require.Equal(t, "đà lạt", dalat.Canonical)
	assert.Contains(t, dalat.Aliases, "dalat")
	assert.Contains(t, dalat.Aliases, "da lat")
}

func TestCanonicalForFolded(t *testing.T) {
	tests := map[string]string{
		"sa pa":   "sa pa",
		"sapa":    "sa pa",
		"da nang": "đà nẵng",
		"hoi an":  "hội an",
		"saigon":  "hồ chí minh",
	}
	for folded, want := range tests {
		got, ok := CanonicalForFolded(folded)
		require.True(t, ok, folded)
		assert.Equal(t, want, got)
	}

	_, ok := CanonicalForFolded("khong co")
	assert.False(t, ok)
}

func TestCanonicalsAreLowercaseAndKnown(t *testing.T) {
	for _, c := range Canonicals() {
		assert.True(t, IsCanonical(c))
	}
	assert.False(t, IsCanonical("Hà Nội"))
}

func TestStopwordsAndNumbers(t *testing.T) {
	assert.True(t, IsStopword("đó"))
	assert.True(t, IsStopword("hai"))
	assert.False(t, IsStopword("sapa"))

	n, ok := NumberWord("hai")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}
