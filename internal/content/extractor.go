package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"tldr/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

const (
	ArticleStrategyName     = "article"
	PageStrategyName        = "page"
	ReadabilityStrategyName = "readability"
)

// ErrNoContent means every strategy came back empty.
var ErrNoContent = errors.New("no readable content")

// Page is the parsed form of a fetched document handed to each strategy.
type Page struct {
	URL  *url.URL
	HTML string
	Doc  *goquery.Document
}

// Strategy selects readable text from a page. An empty result means the
// strategy found nothing and the next one should be tried.
type Strategy interface {
	Name() string
	Extract(page *Page) string
}

// SelectorStrategy joins the text of every element matching Selector with a
// single space, in document order.
type SelectorStrategy struct {
	name     string
	selector string
}

func NewSelectorStrategy(name, selector string) *SelectorStrategy {
	return &SelectorStrategy{name: name, selector: selector}
}

func (s *SelectorStrategy) Name() string {
	return s.name
}

func (s *SelectorStrategy) Extract(page *Page) string {
	fragments := page.Doc.Find(s.selector).Map(func(_ int, sel *goquery.Selection) string {
		return sel.Text()
	})

	return strings.Join(fragments, " ")
}

// ReadabilityStrategy falls back to go-readability's main-content detection
// for pages that carry text outside <p> elements.
type ReadabilityStrategy struct{}

func NewReadabilityStrategy() *ReadabilityStrategy {
	return &ReadabilityStrategy{}
}

func (s *ReadabilityStrategy) Name() string {
	return ReadabilityStrategyName
}

func (s *ReadabilityStrategy) Extract(page *Page) string {
	article, err := readability.FromReader(strings.NewReader(page.HTML), page.URL)
	if err != nil {
		return ""
	}

	return strings.Join(strings.Fields(article.TextContent), " ")
}

// DefaultStrategies prefers paragraphs inside <article> and falls back to
// every paragraph on the page.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewSelectorStrategy(ArticleStrategyName, "article p"),
		NewSelectorStrategy(PageStrategyName, "p"),
	}
}

type Extractor struct {
	strategies []Strategy
}

func NewExtractor(strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	return &Extractor{strategies: strategies}
}

// Extract runs the strategies in order and returns the first result that is
// non-empty after trimming.
func (e *Extractor) Extract(doc domain.FetchedDocument) (domain.ExtractedContent, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return domain.ExtractedContent{}, fmt.Errorf("create document from reader: %w", err)
	}

	page := &Page{HTML: doc.HTML, Doc: parsed}
	if doc.URL != "" {
		if pageURL, parseErr := url.Parse(doc.URL); parseErr == nil {
			page.URL = pageURL
		}
	}

	for _, strategy := range e.strategies {
		text := strategy.Extract(page)
		if strings.TrimSpace(text) == "" {
			continue
		}

		return domain.ExtractedContent{Text: text, Strategy: strategy.Name()}, nil
	}

	return domain.ExtractedContent{}, ErrNoContent
}
