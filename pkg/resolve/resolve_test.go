package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item string

func (i item) GetName() string { return string(i) }

func items(names ...string) []item {
	out := make([]item, 0, len(names))
	for _, n := range names {
		out = append(out, item(n))
	}
	return out
}

func TestResolveNoMatchSuggestsEverything(t *testing.T) {
	candidates := items("alpha", "beta", "gamma")

	outcome := Resolve(candidates, "delta")
	assert.Equal(t, NoMatch, outcome.Kind)
	assert.False(t, outcome.Found())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, outcome.Suggestions)
}

func TestResolveEmptyCandidates(t *testing.T) {
	outcome := Resolve([]item{}, "anything")
	assert.Equal(t, NoMatch, outcome.Kind)
	assert.Empty(t, outcome.Suggestions)
}

func TestResolveUniqueSubstring(t *testing.T) {
	candidates := items("code-review", "deploy", "lint")

	outcome := Resolve(candidates, "dep")
	assert.Equal(t, UniqueMatch, outcome.Kind)
	assert.True(t, outcome.Found())
	assert.Equal(t, item("deploy"), outcome.Match)
	assert.Empty(t, outcome.Suggestions)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	candidates := items("FooBar", "baz")

	for _, query := range []string{"Foo", "foo", "FOO", "oob"} {
		t.Run(query, func(t *testing.T) {
			outcome := Resolve(candidates, query)
			assert.Equal(t, UniqueMatch, outcome.Kind)
			assert.Equal(t, item("FooBar"), outcome.Match)
		})
	}
}

func TestResolveExactMatchBeatsAmbiguity(t *testing.T) {
	candidates := items("code-review", "code-reviewer", "review")

	outcome := Resolve(candidates, "Review")
	assert.Equal(t, UniqueMatch, outcome.Kind)
	assert.Equal(t, item("review"), outcome.Match)

	outcome = Resolve(candidates, "code-review")
	assert.Equal(t, UniqueMatch, outcome.Kind)
	assert.Equal(t, item("code-review"), outcome.Match)
}

func TestResolveAmbiguousListsOnlyMatches(t *testing.T) {
	candidates := items("code-review", "code-reviewer", "deploy")

	outcome := Resolve(candidates, "review")
	assert.Equal(t, AmbiguousMatch, outcome.Kind)
	assert.False(t, outcome.Found())
	assert.Equal(t, []string{"code-review", "code-reviewer"}, outcome.Suggestions)
}

func TestResolveQueryIsLiteral(t *testing.T) {
	candidates := items("a.b", "axb", "c*d")

	outcome := Resolve(candidates, ".")
	assert.Equal(t, UniqueMatch, outcome.Kind)
	assert.Equal(t, item("a.b"), outcome.Match)

	outcome = Resolve(candidates, "c*")
	assert.Equal(t, UniqueMatch, outcome.Kind)
	assert.Equal(t, item("c*d"), outcome.Match)

	outcome = Resolve(candidates, "*")
	assert.Equal(t, UniqueMatch, outcome.Kind)
}

func TestResolveEmptyQueryMatchesAll(t *testing.T) {
	outcome := Resolve(items("one", "two"), "")
	assert.Equal(t, AmbiguousMatch, outcome.Kind)
	assert.Equal(t, []string{"one", "two"}, outcome.Suggestions)

	outcome = Resolve(items("only"), "")
	assert.Equal(t, UniqueMatch, outcome.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "none", NoMatch.String())
	assert.Equal(t, "unique", UniqueMatch.String())
	assert.Equal(t, "ambiguous", AmbiguousMatch.String())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, Names(items("x", "y")))
	assert.Equal(t, []string{}, Names([]item{}))
}
