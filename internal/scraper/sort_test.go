package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortCards(t *testing.T) {
	cards := []*Card{
		{Name: "King of Cups", SuitArcana: "Cups", SequenceNum: 0},
		{Name: "Ace of Wands", SuitArcana: "Wands", SequenceNum: 2},
		{Name: "The Fool", SuitArcana: "Major Arcana", SequenceNum: 0},
		{Name: "Two of Cups", SuitArcana: "Cups", SequenceNum: 1},
		{Name: "The Magician", SuitArcana: "Major Arcana", SequenceNum: 1},
		{Name: "Queen of Wands", SuitArcana: "Wands", SequenceNum: 0},
	}

	SortCards(cards)

	var names []string
	for _, c := range cards {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"The Fool",
		"The Magician",
		"Ace of Wands",
		"Queen of Wands",
		"Two of Cups",
		"King of Cups",
	}, names)
}

func TestSortCards_UnknownRankKeepsPageOrder(t *testing.T) {
	cards := []*Card{
		{Name: "Mystery Card B", SuitArcana: "Swords", SequenceNum: 5},
		{Name: "Ace of Swords", SuitArcana: "Swords", SequenceNum: 7},
		{Name: "Mystery Card A", SuitArcana: "Swords", SequenceNum: 2},
	}

	SortCards(cards)

	assert.Equal(t, "Ace of Swords", cards[0].Name)
	assert.Equal(t, "Mystery Card A", cards[1].Name)
	assert.Equal(t, "Mystery Card B", cards[2].Name)
}
