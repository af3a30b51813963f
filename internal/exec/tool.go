package exec

//go:generate mockgen -source=tool.go -destination=tool_mock.go -package=exec

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

// ToolChecker resolves an executable before it is benchmarked, so a typo
// fails once up front instead of on every run.
type ToolChecker interface {
	// Lookup returns the path tool resolves to, or a *ToolNotFoundError.
	// Names containing a path separator are checked as given.
	Lookup(tool string) (string, error)
}

type pathLookup struct{}

// NewToolChecker returns a ToolChecker searching $PATH.
//
//nolint:ireturn // mocked in tests
func NewToolChecker() ToolChecker {
	return pathLookup{}
}

func (pathLookup) Lookup(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", &ToolNotFoundError{Tool: tool, Err: err}
	}

	return path, nil
}

// ToolNotFoundError reports an executable missing from $PATH.
type ToolNotFoundError struct {
	Tool string
	Err  error
}

func (e *ToolNotFoundError) Error() string {
	return "command not found: " + e.Tool
}

// Unwrap exposes the lookup failure, typically exec.ErrNotFound.
func (e *ToolNotFoundError) Unwrap() error {
	return e.Err
}

// IsToolNotFound reports whether err carries a *ToolNotFoundError.
func IsToolNotFound(err error) bool {
	var notFound *ToolNotFoundError

	return errors.As(err, &notFound)
}
