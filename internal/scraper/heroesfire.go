package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"hotsbot/internal/models"

	"github.com/PuerkitoBio/goquery"
)

var heroSlugPattern = regexp.MustCompile(`/wiki/heroes/([^/"?#]+)`)

// ExtractFreeRotation lists the heroes HeroesFire marks as free, in page order.
// Hero blocks without a wiki link are skipped.
func ExtractFreeRotation(r io.Reader) ([]models.Hero, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse free rotation page: %w", err)
	}

	var heroes []models.Hero
	doc.Find("div.hero.free").Each(func(_ int, div *goquery.Selection) {
		slug, ok := heroSlug(div)
		if !ok {
			return
		}
		heroes = append(heroes, models.Hero{Name: heroNameFromSlug(slug)})
	})

	return heroes, nil
}

func heroSlug(div *goquery.Selection) (string, bool) {
	var slug string
	div.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if m := heroSlugPattern.FindStringSubmatch(href); m != nil {
			slug = m[1]
			return false
		}
		return true
	})
	return slug, slug != ""
}

// heroNameFromSlug turns "li-ming" into "Li Ming".
func heroNameFromSlug(slug string) string {
	return titleCase(strings.ReplaceAll(slug, "-", " "))
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "kel'thuzad" becomes "Kel'Thuzad".
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
