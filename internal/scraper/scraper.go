package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tmh-tarot-scraper/internal/normalize"
)

type Scraper struct {
	selectors *Selectors
}

func NewScraper(selectors *Selectors) *Scraper {
	return &Scraper{
		selectors: selectors,
	}
}

// Extract parses one section page into card records. suitLabel is assigned
// to every record as-is; it never comes from the page. Containers without a
// title are skipped, so decorative and malformed blocks cannot break a run.
func (s *Scraper) Extract(html, suitLabel, pageURL string) ([]*Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// nil base keeps relative image URLs as-is
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var cards []*Card
	sequenceNum := 0

	doc.Find(s.selectors.CardContainer).Each(func(i int, sel *goquery.Selection) {
		name := tryText(sel, s.selectors.TitleSelectors)
		if name == "" {
			return // no heading, skip block
		}

		card := &Card{
			Name:        strings.Join(strings.Fields(name), " "),
			SuitArcana:  suitLabel,
			PageURL:     pageURL,
			SequenceNum: sequenceNum,
		}

		subtitle := firstMatch(sel, s.selectors.SubtitleSelectors)
		if subtitle != nil {
			card.Subtitle = normalize.CleanText(subtitle.Text())
		}

		card.Description = s.description(sel, subtitle)
		card.ImageURL = s.imageURL(sel, base)

		cards = append(cards, card)
		sequenceNum++
	})

	return cards, nil
}

// description joins the container's paragraph texts with a newline. The
// paragraph holding the subtitle is excluded so it is not repeated.
func (s *Scraper) description(container, subtitle *goquery.Selection) string {
	for _, selector := range s.selectors.ParagraphSelectors {
		var parts []string
		container.Find(selector).Each(func(_ int, p *goquery.Selection) {
			if subtitle != nil && containsNode(p, subtitle) {
				return
			}
			if text := normalize.CleanText(p.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return ""
}

// imageURL returns the first plausible card image URL in the container,
// resolved against the page URL. Squarespace serves images through data-src
// and srcset as often as a plain src, so all of them are candidates.
func (s *Scraper) imageURL(container *goquery.Selection, base *url.URL) string {
	for _, selector := range s.selectors.ImageSelectors {
		var found string
		container.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			for _, candidate := range imageCandidates(el) {
				if resolved := resolveImageURL(candidate, base); resolved != "" {
					found = resolved
					return false
				}
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func imageCandidates(el *goquery.Selection) []string {
	var candidates []string
	for _, attr := range []string{"data-src", "data-image", "src", "href"} {
		if v, exists := el.Attr(attr); exists && v != "" {
			candidates = append(candidates, v)
		}
	}
	if srcset, exists := el.Attr("srcset"); exists {
		for _, part := range strings.Split(srcset, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			candidates = append(candidates, strings.Fields(part)[0])
		}
	}
	return candidates
}

// resolveImageURL filters out non-card imagery and resolves the candidate
// against the page base URL. Returns "" when the candidate is rejected.
func resolveImageURL(candidate string, base *url.URL) string {
	candidate = normalize.NormalizeURL(candidate)
	if idx := strings.Index(candidate, "?"); idx > -1 {
		candidate = candidate[:idx]
	}
	if candidate == "" {
		return ""
	}

	low := strings.ToLower(candidate)
	for _, bad := range []string{"logo", "header", "favicon", "sprite"} {
		if strings.Contains(low, bad) {
			return ""
		}
	}
	if !plausibleImage(low) {
		return ""
	}

	if base != nil {
		if ref, err := url.Parse(candidate); err == nil {
			return base.ResolveReference(ref).String()
		}
	}
	return candidate
}

func plausibleImage(low string) bool {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp", ".gif"} {
		if strings.HasSuffix(low, ext) {
			return true
		}
	}
	return strings.Contains(low, "/images/")
}

// tryText returns the first non-empty text among the selectors, in order.
func tryText(sel *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(sel.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// firstMatch returns the first selection with non-empty text, or nil.
func firstMatch(sel *goquery.Selection, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		found := sel.Find(selector).First()
		if found.Length() > 0 && strings.TrimSpace(found.Text()) != "" {
			return found
		}
	}
	return nil
}

// containsNode reports whether outer's node contains (or is) inner's node.
func containsNode(outer, inner *goquery.Selection) bool {
	if len(outer.Nodes) == 0 || len(inner.Nodes) == 0 {
		return false
	}
	for n := inner.Nodes[0]; n != nil; n = n.Parent {
		if n == outer.Nodes[0] {
			return true
		}
	}
	return false
}
