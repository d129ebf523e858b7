// Package style maps a requested summary style to the instruction sent to
// the summarization backend.
package style

type Style string

const (
	Bullet   Style = "bullet"
	Casual   Style = "casual"
	Headline Style = "headline"
	Formal   Style = "formal"
	Default  Style = "default"
)

var instructions = map[Style]string{
	Bullet:   "Summarize the text into concise bullet points.",
	Casual:   "Summarize the text casually as if explaining to a friend.",
	Headline: "Summarize the text in short, bold headlines.",
	Formal:   "Summarize the text in a formal and professional tone.",
	Default:  "Summarize the text concisely while keeping all key details.",
}

// Resolve returns the style named by token, or Default for anything
// unrecognised, including the empty string.
func Resolve(token string) Style {
	s := Style(token)
	if _, ok := instructions[s]; ok {
		return s
	}

	return Default
}

func (s Style) Instruction() string {
	if instruction, ok := instructions[s]; ok {
		return instruction
	}

	return instructions[Default]
}

// All lists every style in a stable order.
func All() []Style {
	return []Style{Bullet, Casual, Headline, Formal, Default}
}
