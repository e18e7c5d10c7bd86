package scraper

import (
	"sort"
	"strings"
)

var suitOrder = map[string]int{
	"Major Arcana": 0,
	"Wands":        1,
	"Cups":         2,
	"Swords":       3,
	"Pentacles":    4,
}

var rankOrder = map[string]int{
	"Ace":    1,
	"Two":    2,
	"Three":  3,
	"Four":   4,
	"Five":   5,
	"Six":    6,
	"Seven":  7,
	"Eight":  8,
	"Nine":   9,
	"Ten":    10,
	"Page":   11,
	"Knight": 12,
	"Queen":  13,
	"King":   14,
}

// SortCards orders records for the CSV: Major Arcana first in page order,
// then each suit Ace through King. The sort is stable, so cards with an
// unrecognized rank keep their page order at the end of their suit.
func SortCards(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if sa, sb := sectionRank(a.SuitArcana), sectionRank(b.SuitArcana); sa != sb {
			return sa < sb
		}
		if ra, rb := cardRank(a), cardRank(b); ra != rb {
			return ra < rb
		}
		return a.SequenceNum < b.SequenceNum
	})
}

func sectionRank(label string) int {
	if r, ok := suitOrder[label]; ok {
		return r
	}
	return len(suitOrder)
}

func cardRank(c *Card) int {
	if c.SuitArcana == "Major Arcana" {
		return 0
	}
	first, _, _ := strings.Cut(c.Name, " ")
	if r, ok := rankOrder[first]; ok {
		return r
	}
	return 99
}
