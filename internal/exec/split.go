package exec

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyCommand is returned for blank command lines.
var ErrEmptyCommand = errors.New("empty command")

// Shell is the interpreter used for command lines that need one.
const Shell = "sh"

// Split turns a command line into argv. A single simple command is split
// and expanded in-process; anything else (pipes, lists, redirections,
// assignments, subshells) is handed to Shell with -c.
func Split(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyCommand
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", line)
	}

	if !isSimple(file) {
		return []string{Shell, "-c", line}, nil
	}

	fields, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding %q", line)
	}

	if len(fields) == 0 {
		return nil, errors.Wrapf(ErrEmptyCommand, "%q expands to nothing", line)
	}

	return fields, nil
}

func isSimple(file *syntax.File) bool {
	if len(file.Stmts) != 1 {
		return false
	}

	stmt := file.Stmts[0]
	if stmt.Negated || stmt.Background || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return false
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 || len(call.Args) == 0 {
		return false
	}

	simple := true

	syntax.Walk(call, func(node syntax.Node) bool {
		switch node.(type) {
		case *syntax.CmdSubst, *syntax.ProcSubst:
			simple = false
		}

		return simple
	})

	return simple
}
