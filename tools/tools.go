//go:build tools

// Package tools pins the code generators run by go:generate so their versions
// live in go.mod.
package tools

import (
	_ "github.com/dmarkham/enumer"
	_ "go.uber.org/mock/mockgen"
)
