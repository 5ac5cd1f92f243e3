// Copyright 2014 Google Inc.
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

// Command btree is an interactive shell over a balanced multiway tree of
// integers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/ordindex/btree"
	"github.com/ordindex/btree/internal/cli"
)

var (
	order   *int
	degree  *int
	seed    *int
	check   *bool
	verbose *bool
)

func setupFlags() {
	order = flag.Int("order", 0, "Order m of an m-way search tree (at most m children per node).")
	degree = flag.Int("degree", 0, "Minimum degree t of a B-tree (t to 2t children per internal node).")
	seed = flag.Int("seed", 0, "Insert this many random keys before the first prompt.")
	check = flag.Bool("check", false, "Verify the tree's invariants after every insert and delete.")
	verbose = flag.Bool("v", false, "Log splits, borrows and merges to stderr.")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func main() {
	setupFlags()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := cli.CapacityFromFlags(*order, *degree)
	if err != nil {
		flag.Usage()
		log.WithError(err).Fatal("invalid arguments")
	}
	opts := []btree.Option{btree.WithLogger(log)}
	if *check {
		opts = append(opts, btree.WithInvariantChecks())
	}
	tree, err := btree.NewOrderedG[int](c, opts...)
	if err != nil {
		log.WithError(err).Fatal("creating tree")
	}

	shell := cli.New(os.Stdin, os.Stdout, tree, cli.Options{
		Prompt: term.IsTerminal(int(os.Stdin.Fd())),
		Logger: log,
	})
	if *seed > 0 {
		if err := shell.Seed(*seed); err != nil {
			log.WithError(err).Fatal("seeding tree")
		}
	}
	if err := shell.Start(); err != nil {
		log.WithError(err).Fatal("session ended")
	}
}
