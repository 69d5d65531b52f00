// Package frontmatter extracts the flat key/value preamble that opens a
// SKILL.md file. It is intentionally permissive: descriptor files are
// hand-written, so malformed input degrades to an empty preamble instead of
// an error. Only the name and description keys are recognized.
package frontmatter

import (
	"strings"
	"unicode"
)

// Delimiter opens and closes a preamble block.
const Delimiter = "---"

// Preamble holds the recognized preamble fields. A nil field was never
// declared; an empty string was declared with no value.
type Preamble struct {
	Name        *string `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
}

// Document is a parsed descriptor file.
type Document struct {
	Preamble Preamble
	Body     string
}

// DescriptionOr returns the declared description, or def when none was declared.
func (p Preamble) DescriptionOr(def string) string {
	if p.Description == nil {
		return def
	}
	return *p.Description
}

// IsEmpty reports whether no recognized field was declared.
func (p Preamble) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// Parse splits text into its preamble and body. It never fails: text without
// an opening delimiter, or with no closing delimiter, is returned whole as the
// body with an empty preamble.
func Parse(text string) Document {
	if !strings.HasPrefix(text, Delimiter) {
		return Document{Body: text}
	}

	end := strings.Index(text[len(Delimiter):], Delimiter)
	if end == -1 {
		return Document{Body: text}
	}

	block := text[len(Delimiter) : len(Delimiter)+end]
	rest := text[len(Delimiter)+end+len(Delimiter):]

	p := &parser{}
	for _, line := range strings.Split(block, "\n") {
		p.feed(strings.TrimSpace(line))
	}
	p.flush()

	return Document{
		Preamble: p.result,
		Body:     strings.TrimLeftFunc(rest, unicode.IsSpace),
	}
}

// ParseDescription is a shorthand for the description field of text.
func ParseDescription(text string) *string {
	return Parse(text).Preamble.Description
}

type parserState int

const (
	stateIdle parserState = iota
	stateAccumulating
)

// parser is a two-state machine. In stateIdle no key is pending; in
// stateAccumulating key holds the current key and value collects its text
// until the next declaration or the end of the block.
type parser struct {
	state  parserState
	key    string
	value  strings.Builder
	result Preamble
}

func (p *parser) feed(line string) {
	if key, value, ok := strings.Cut(line, ":"); ok {
		p.declare(strings.TrimSpace(key), strings.TrimSpace(value))
		return
	}

	if p.state != stateAccumulating || line == "" {
		return
	}

	if strings.HasPrefix(line, "-") {
		p.value.WriteByte('\n')
	} else {
		p.value.WriteByte(' ')
	}
	p.value.WriteString(line)
}

func (p *parser) declare(key, value string) {
	p.flush()
	p.state = stateAccumulating
	p.key = key
	p.value.WriteString(value)
}

// flush commits the pending key, if any, and returns to stateIdle.
func (p *parser) flush() {
	if p.state != stateAccumulating {
		return
	}

	cleaned := cleanValue(p.value.String())
	switch p.key {
	case "name":
		p.result.Name = &cleaned
	case "description":
		p.result.Description = &cleaned
	}

	p.state = stateIdle
	p.key = ""
	p.value.Reset()
}

// cleanValue trims value and removes one matching pair of surrounding quotes.
func cleanValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 2 {
		return trimmed
	}

	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if first == last && (first == '"' || first == '\'') {
		return trimmed[1 : len(trimmed)-1]
	}
	return trimmed
}
