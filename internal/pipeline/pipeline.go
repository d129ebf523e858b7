package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tldr/internal/content"
	"tldr/internal/domain"
	"tldr/internal/style"
	"tldr/internal/summarizer"
)

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindFetch
	KindNoContent
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalidInput"
	case KindFetch:
		return "fetch"
	case KindNoContent:
		return "noContent"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error is the only error type Run returns. Err is kept for server-side
// logging and is never shown to the caller.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind carried by err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}

	return 0
}

var errEmptyText = errors.New("text is empty")

type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (domain.FetchedDocument, error)
}

type Extractor interface {
	Extract(doc domain.FetchedDocument) (domain.ExtractedContent, error)
}

type Pipeline struct {
	fetcher    Fetcher
	extractor  Extractor
	summarizer summarizer.Summarizer
	maxChars   int
	log        *slog.Logger
}

func New(
	fetcher Fetcher,
	extractor Extractor,
	s summarizer.Summarizer,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		extractor:  extractor,
		summarizer: s,
		maxChars:   domain.MaxContentChars,
		log:        log,
	}
}

// Run classifies the request text, acquires the content and summarises it
// in the requested style. It stops at the first failing stage.
func (p *Pipeline) Run(
	ctx context.Context,
	req domain.SummarizeRequest,
) (domain.Summary, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.Summary{}, &Error{Kind: KindInvalidInput, Err: errEmptyText}
	}

	input := content.Classify(req.Text)

	var text string
	var linkCount int

	switch input.Kind {
	case domain.InputRemoteDocument:
		extracted, err := p.acquire(ctx, input.URL)
		if err != nil {
			return domain.Summary{}, err
		}
		text = extracted
	default:
		linkCount = len(content.EmbeddedLinks(input.Text))
		if linkCount > 0 {
			p.log.DebugContext(ctx, "Raw text contains links",
				"linkCount", linkCount,
				"textLength", len(input.Text))
		}
		text = input.Text
	}

	st := style.Resolve(req.Style)

	summary, err := p.summarizer.Summarize(ctx, summarizer.Input{
		Instruction: st.Instruction(),
		Text:        text,
	})
	if err != nil {
		return domain.Summary{}, &Error{Kind: KindBackend, Err: fmt.Errorf("summarize: %w", err)}
	}

	p.log.InfoContext(ctx, "Content is summarized",
		"inputKind", input.Kind.String(),
		"style", string(st),
		"contentLength", len(text),
		"linkCount", linkCount,
		"summaryLength", len(summary))

	return domain.Summary{Text: summary}, nil
}

func (p *Pipeline) acquire(ctx context.Context, pageURL string) (string, error) {
	doc, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", &Error{Kind: KindFetch, Err: fmt.Errorf("fetch: %w", err)}
	}

	extracted, err := p.extractor.Extract(doc)
	if err != nil {
		return "", &Error{Kind: KindNoContent, Err: fmt.Errorf("extract: %w", err)}
	}

	bounded := content.Bound(extracted.Text, p.maxChars)

	p.log.InfoContext(ctx, "Content is extracted",
		"pageURL", pageURL,
		"strategy", extracted.Strategy,
		"extractedLength", len(extracted.Text),
		"boundedLength", len(bounded))

	return bounded, nil
}
