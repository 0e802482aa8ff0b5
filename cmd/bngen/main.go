// Copyright 2026 go-bottleneck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bngen generates the per-(rank, dtype) replace wrappers, the
// slow-path axis aliases, and the dispatch-table registration for the bn
// package.
//
// Usage:
//
//	bngen -output replace_gen.go -pkg bn
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/bngen -output replace_gen.go -pkg bn
//
// The wrappers are mechanical: one function per supported (rank, dtype)
// combination, all delegating to the generic kernels in replace_base.go.
// Stamping them out keeps the dispatch tables and the routine set in one
// generated file, so adding a dtype or rank is a change to the dtype table
// in generate.go rather than hand-edited boilerplate.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "replace_gen.go", "Output file name")
	packageOut = flag.String("pkg", "bn", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*outputFile, *packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
}
