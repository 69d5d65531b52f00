package service

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/jingkaihe/claudelist/pkg/resolve"
)

// filterByName keeps the items whose lower-cased name matches the
// lower-cased glob pattern. An empty pattern keeps everything.
func filterByName[T resolve.Named](items []T, pattern string) ([]T, error) {
	if pattern == "" {
		return items, nil
	}

	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter pattern '%s'", pattern)
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if g.Match(strings.ToLower(item.GetName())) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
