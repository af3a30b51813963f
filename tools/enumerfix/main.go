// Command enumerfix rewrites enumer output to build its errors with
// github.com/cockroachdb/errors instead of fmt.Errorf.
//
//	enumerfix format_enumer.go [more_enumer.go ...]
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	errorsPath      = "github.com/cockroachdb/errors"
	filePermissions = 0o644
)

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix <file> [file...]")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string) error {
	if len(files) == 0 {
		return ErrUsage
	}

	for _, name := range files {
		if err := fixFile(name); err != nil {
			return errors.Wrapf(err, "fixing %s", name)
		}
	}

	return nil
}

func fixFile(name string) error {
	//nolint:gosec // G304: file path from go:generate arguments
	content, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	fixed, err := fix(content)
	if err != nil {
		return err
	}

	if bytes.Equal(content, fixed) {
		return nil
	}

	if err := os.WriteFile(name, fixed, filePermissions); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// fix swaps fmt.Errorf for errors.Newf, drops the fmt import when nothing
// else uses it and adds the errors import in its own group.
func fix(src []byte) ([]byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parsing source")
	}

	replaced := 0
	fmtUses := 0

	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != "fmt" {
			return true
		}

		if sel.Sel.Name == "Errorf" {
			pkg.Name = "errors"
			sel.Sel.Name = "Newf"
			replaced++
		} else {
			fmtUses++
		}

		return true
	})

	if replaced == 0 {
		return src, nil
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, errors.Wrap(err, "printing source")
	}

	out := buf.String()
	imported := hasImport(file, errorsPath)

	if fmtUses == 0 {
		out, imported = dropFmt(out, imported)
	}

	if !imported {
		out = addImport(out, errorsPath)
	}

	formatted, err := format.Source([]byte(out))
	if err != nil {
		return nil, errors.Wrap(err, "formatting result")
	}

	return formatted, nil
}

func hasImport(file *ast.File, path string) bool {
	for _, imp := range file.Imports {
		if p, err := strconv.Unquote(imp.Path.Value); err == nil && p == path {
			return true
		}
	}

	return false
}

// dropFmt removes the fmt import. A lone "import \"fmt\"" is swapped for the
// errors import in place, which is reported through the second result.
func dropFmt(src string, imported bool) (string, bool) {
	single := "import \"fmt\"\n"

	if strings.Contains(src, single) {
		if imported {
			return strings.Replace(src, single, "", 1), true
		}

		return strings.Replace(src, single, "import "+strconv.Quote(errorsPath)+"\n", 1), true
	}

	src = strings.Replace(src, "\t\"fmt\"\n", "", 1)

	if strings.Contains(src, "import (\n)\n") {
		if imported {
			return strings.Replace(src, "import (\n)\n", "", 1), true
		}

		return strings.Replace(src, "import (\n)\n", "import "+strconv.Quote(errorsPath)+"\n", 1), true
	}

	return src, imported
}

// addImport appends path as a separate group at the end of the import block,
// or creates a block after the package clause.
func addImport(src, path string) string {
	quoted := strconv.Quote(path)

	if i := strings.Index(src, "import (\n"); i >= 0 {
		end := i + strings.Index(src[i:], "\n)")

		return src[:end] + "\n\n\t" + quoted + src[end:]
	}

	if i := strings.Index(src, "\nimport \""); i >= 0 {
		lineEnd := i + 1 + strings.Index(src[i+1:], "\n")
		single := strings.TrimPrefix(src[i+1:lineEnd], "import ")

		return src[:i+1] + "import (\n\t" + single + "\n\n\t" + quoted + "\n)" + src[lineEnd:]
	}

	pkgEnd := strings.Index(src, "\n") + 1

	return src[:pkgEnd] + "\nimport " + quoted + "\n" + src[pkgEnd:]
}
