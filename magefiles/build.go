//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for trellis and the pocket demo.
//
// Usage:
//
//	mage build       Compile pocket to bin/
//	mage install     Install pocket to GOPATH/bin
//	mage clean       Remove build artifacts
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Write coverage.out and print per-function coverage
//	mage lint        Run golangci-lint
//	mage stats       Print Go line counts as JSON
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pocket"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pocket"
)

// ldflags stamps the pocket version from the nearest git tag, if any.
func ldflags() string {
	tag, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(tag) == "" {
		return ""
	}
	return "-X main.version=" + strings.TrimPrefix(strings.TrimSpace(tag), "v")
}

// Build compiles the pocket binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if flags := ldflags(); flags != "" {
		args = append(args, "-ldflags", flags)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
