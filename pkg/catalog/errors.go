package catalog

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/pkg/errors"

	"github.com/jingkaihe/claudelist/pkg/resolve"
)

// NotFoundError reports that no entry name contains the query. Suggestions
// holds every known name.
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: '%s'", e.Query)
}

// AmbiguousMatchError reports that several entry names contain the query and
// none equals it. Suggestions holds only the matching names.
type AmbiguousMatchError struct {
	Query       string
	Suggestions []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous name: '%s' matches %d entries", e.Query, len(e.Suggestions))
}

// ConfigNotFoundError reports a missing descriptor or settings file.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config not found: %s", e.Path)
}

// InvalidConfigError reports a settings file that is present but malformed.
type InvalidConfigError struct {
	Description string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config file: %s", e.Description)
}

// PermissionDeniedError reports a file or directory that cannot be read.
type PermissionDeniedError struct {
	Path string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Path)
}

// IsNotFound reports whether err is a NotFoundError. Ambiguous matches are
// deliberately excluded.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// SuggestionsOf returns the suggestion list carried by a NotFoundError or
// AmbiguousMatchError, or nil for any other error.
func SuggestionsOf(err error) []string {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf.Suggestions
	}
	var am *AmbiguousMatchError
	if stderrors.As(err, &am) {
		return am.Suggestions
	}
	return nil
}

// outcomeError converts an unsuccessful resolution into its typed error.
func outcomeError[T resolve.Named](outcome resolve.Outcome[T], query string) error {
	switch outcome.Kind {
	case resolve.AmbiguousMatch:
		return &AmbiguousMatchError{Query: query, Suggestions: outcome.Suggestions}
	case resolve.NoMatch:
		return &NotFoundError{Query: query, Suggestions: outcome.Suggestions}
	default:
		return nil
	}
}

// wrapFSError maps a filesystem error onto the catalog error taxonomy.
func wrapFSError(err error, path, action string) error {
	if stderrors.Is(err, fs.ErrPermission) {
		return &PermissionDeniedError{Path: path}
	}
	return errors.Wrapf(err, "failed to %s %s", action, path)
}
