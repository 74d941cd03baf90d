package scraper

import (
	"strings"
	"testing"

	"hotsbot/internal/models"

	"github.com/stretchr/testify/require"
)

func TestExtractFreeRotation(t *testing.T) {
	heroes, err := ExtractFreeRotation(openFixture(t, "free_rotation.html"))
	require.NoError(t, err)
	require.Equal(t, []models.Hero{
		{Name: "Li Ming"},
		{Name: "Kel Thuzad"},
		{Name: "The Lost Vikings"},
		{Name: "E T C"},
	}, heroes)
}

func TestExtractFreeRotationNoHeroes(t *testing.T) {
	heroes, err := ExtractFreeRotation(strings.NewReader(`<html><body><div class="hero">x</div></body></html>`))
	require.NoError(t, err)
	require.Empty(t, heroes)
}

func TestHeroNameFromSlug(t *testing.T) {
	tests := map[string]string{
		"li-ming":     "Li Ming",
		"zeratul":     "Zeratul",
		"kel'thuzad":  "Kel'Thuzad",
		"LT-MORALES":  "Lt Morales",
		"the-butcher": "The Butcher",
	}
	for slug, want := range tests {
		require.Equal(t, want, heroNameFromSlug(slug), slug)
	}
}
