//go:build tools

package main

// Pin build tooling so `go run` invocations use the versions in go.mod.
import (
	_ "github.com/go-task/task/v3/cmd/task"
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
)
