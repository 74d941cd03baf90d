package scraper

import (
	"fmt"
	"io"
	"strings"

	"hotsbot/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// ExtractPlayerSearch reads the rows of a HotsLogs player search page.
//
// The page has no semantic markup for its columns, so the lookup relies on
// the layout: the cell holding the player name sits between the region cell
// and the league and MMR cells. A page without a result table, or rows with
// no cell containing query, yield nothing.
func ExtractPlayerSearch(r io.Reader, query string) ([]models.PlayerRating, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse player search page: %w", err)
	}

	table := doc.Find("tbody").First()
	if table.Length() == 0 {
		return nil, nil
	}

	needle := strings.ToLower(query)
	var ratings []models.PlayerRating
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		nameCell := row.Find("td").FilterFunction(func(_ int, cell *goquery.Selection) bool {
			return strings.Contains(strings.ToLower(cellText(cell)), needle)
		}).First()
		if nameCell.Length() == 0 {
			return
		}

		region, league, mmr := adjacentCells(nameCell)
		ratings = append(ratings, models.PlayerRating{
			Name:   cellText(nameCell),
			Region: cellText(region),
			League: cellText(league),
			MMR:    cellText(mmr),
		})
	})

	return ratings, nil
}

// adjacentCells returns the cell before the name cell and the two after it.
// Missing neighbours come back as empty selections.
func adjacentCells(nameCell *goquery.Selection) (before, next, afterNext *goquery.Selection) {
	before = nameCell.Prev()
	next = nameCell.Next()
	afterNext = next.Next()
	return before, next, afterNext
}

func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}
