package scraper

// Card is one extracted card record. Records are value objects: the
// pipeline only appends them, never mutates one after extraction.
type Card struct {
	Name        string
	SuitArcana  string
	Subtitle    string
	Description string
	ImageURL    string
	PageURL     string
	SequenceNum int
}

type Selectors struct {
	CardContainer      string   `yaml:"card_container"`
	TitleSelectors     []string `yaml:"title_selectors"`
	SubtitleSelectors  []string `yaml:"subtitle_selectors"`
	ParagraphSelectors []string `yaml:"paragraph_selectors"`
	ImageSelectors     []string `yaml:"image_selectors"`
}

// DefaultSelectors matches the Squarespace layout of the card pages.
func DefaultSelectors() *Selectors {
	return &Selectors{
		CardContainer:      "div.sqs-block-content, article.card",
		TitleSelectors:     []string{"h2", "h3", "h4"},
		SubtitleSelectors:  []string{"p.subtitle", "p em", "h4 em"},
		ParagraphSelectors: []string{"p"},
		ImageSelectors:     []string{"img", "noscript img", "a.sqs-block-image-link"},
	}
}
