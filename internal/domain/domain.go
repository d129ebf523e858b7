package domain

const (
	// MaxContentChars caps extracted page content before it reaches the backend.
	MaxContentChars = 8000

	NoSummaryGenerated = "No summary generated."
)

type InputKind int

const (
	InputRawText InputKind = iota
	InputRemoteDocument
)

func (k InputKind) String() string {
	switch k {
	case InputRawText:
		return "rawText"
	case InputRemoteDocument:
		return "remoteDocument"
	default:
		return "unknown"
	}
}

type SummarizeRequest struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// Input is the classified request text. Text is set for InputRawText,
// URL for InputRemoteDocument.
type Input struct {
	Kind InputKind
	Text string
	URL  string
}

type FetchedDocument struct {
	URL  string
	HTML string
}

type ExtractedContent struct {
	Text     string
	Strategy string
}

type Summary struct {
	Text string
}
