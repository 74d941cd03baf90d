package scraper

import (
	"os"
	"strings"
	"testing"

	"hotsbot/internal/models"

	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExtractPlayerSearch(t *testing.T) {
	ratings, err := ExtractPlayerSearch(openFixture(t, "player_search.html"), "WOBBLEY")
	require.NoError(t, err)
	require.Equal(t, []models.PlayerRating{
		{Name: "Wobbley", Region: "US", League: "Master", MMR: "2950"},
		{Name: "wobbleyEU", Region: "EU", League: "Diamond", MMR: "2410"},
	}, ratings)
}

func TestExtractPlayerSearchSingleMatch(t *testing.T) {
	ratings, err := ExtractPlayerSearch(openFixture(t, "player_search.html"), "someone")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	require.Equal(t, models.PlayerRating{Name: "Someone", Region: "KR", League: "Gold", MMR: "1800"}, ratings[0])
}

func TestExtractPlayerSearchNoMatchingRows(t *testing.T) {
	ratings, err := ExtractPlayerSearch(openFixture(t, "player_search.html"), "Falstad")
	require.NoError(t, err)
	require.Empty(t, ratings)
}

func TestExtractPlayerSearchFullBattleTagMissesBareNames(t *testing.T) {
	ratings, err := ExtractPlayerSearch(openFixture(t, "player_search.html"), "Wobbley#2327")
	require.NoError(t, err)
	require.Empty(t, ratings)
}

func TestExtractPlayerSearchNoTable(t *testing.T) {
	ratings, err := ExtractPlayerSearch(openFixture(t, "player_search_empty.html"), "Wobbley")
	require.NoError(t, err)
	require.Empty(t, ratings)
}

func TestExtractPlayerSearchMissingNeighbours(t *testing.T) {
	page := `<table><tbody><tr><td>Valla</td></tr></tbody></table>`

	ratings, err := ExtractPlayerSearch(strings.NewReader(page), "valla")
	require.NoError(t, err)
	require.Equal(t, []models.PlayerRating{{Name: "Valla"}}, ratings)
}

func TestExtractPlayerSearchTreatsQueryLiterally(t *testing.T) {
	page := `<table><tbody>
		<tr><td>US</td><td>Li.Li</td><td>Silver</td><td>1500</td></tr>
		<tr><td>US</td><td>LiXLi</td><td>Bronze</td><td>1200</td></tr>
	</tbody></table>`

	ratings, err := ExtractPlayerSearch(strings.NewReader(page), "li.li")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	require.Equal(t, "Li.Li", ratings[0].Name)
}
