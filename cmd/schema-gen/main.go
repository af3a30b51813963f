// Command schema-gen regenerates schema/benchtimer.schema.json. An optional
// argument overrides the output directory.
//
//go:generate go run . ../../schema
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smykla-skalski/benchtimer/internal/schema"
)

func main() {
	path, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema-gen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

func run(args []string) (string, error) {
	dir := "schema"
	if len(args) > 0 {
		dir = args[0]
	}

	path := filepath.Join(dir, schema.Filename())

	return path, schema.WriteFile(path, true)
}
