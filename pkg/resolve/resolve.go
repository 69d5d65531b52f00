// Package resolve maps a user-supplied, possibly partial name onto exactly one
// item of a named collection.
package resolve

import "strings"

// Named is anything that can be looked up by name.
type Named interface {
	GetName() string
}

// Kind classifies the result of a lookup.
type Kind int

const (
	// NoMatch means no candidate name contains the query.
	NoMatch Kind = iota
	// UniqueMatch means exactly one candidate was selected.
	UniqueMatch
	// AmbiguousMatch means several candidates contain the query and none equals it.
	AmbiguousMatch
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case UniqueMatch:
		return "unique"
	case AmbiguousMatch:
		return "ambiguous"
	default:
		return "none"
	}
}

// Outcome is the result of Resolve. Match is only meaningful for
// UniqueMatch. For NoMatch, Suggestions lists every candidate; for
// AmbiguousMatch it lists only the candidates that matched.
type Outcome[T Named] struct {
	Kind        Kind
	Match       T
	Suggestions []string
}

// Found reports whether a single candidate was selected.
func (o Outcome[T]) Found() bool {
	return o.Kind == UniqueMatch
}

// Resolve selects the candidate whose name contains query, ignoring case.
// When several candidates contain the query, one whose name equals it
// (ignoring case) wins; otherwise the outcome is ambiguous. The query is
// matched literally, never as a pattern. Suggestions keep candidate order.
func Resolve[T Named](candidates []T, query string) Outcome[T] {
	needle := strings.ToLower(query)

	var matches []T
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.GetName()), needle) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return Outcome[T]{Kind: NoMatch, Suggestions: Names(candidates)}
	case 1:
		return Outcome[T]{Kind: UniqueMatch, Match: matches[0]}
	}

	for _, m := range matches {
		if strings.ToLower(m.GetName()) == needle {
			return Outcome[T]{Kind: UniqueMatch, Match: m}
		}
	}

	return Outcome[T]{Kind: AmbiguousMatch, Suggestions: Names(matches)}
}

// Names returns the names of items in order.
func Names[T Named](items []T) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.GetName())
	}
	return names
}
