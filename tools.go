//go:build tools
// +build tools

// Package tools pins the CLIs used by the build: migrations, swagger docs and linting.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
