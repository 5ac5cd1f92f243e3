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

// Package cli implements the interactive shell around an integer tree.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"

	"github.com/ordindex/btree"
)

// indent is the number of spaces per tree level in SHOW output.
const indent = 4

// Options configure a CLI.
type Options struct {
	// Prompt prints "> " before reading each line. Set it only when the
	// input is a terminal.
	Prompt bool
	// Logger receives command and error events. Nil discards them.
	Logger *logrus.Logger
}

type CLI struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.BTreeG[int]
	log     *logrus.Logger
	prompt  bool
	palette []*color.Color
}

func New(in io.Reader, out io.Writer, tree *btree.BTreeG[int], opts Options) *CLI {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &CLI{
		scanner: bufio.NewScanner(in),
		out:     out,
		tree:    tree,
		log:     log,
		prompt:  opts.Prompt,
		palette: defaultPalette(),
	}
}

// defaultPalette colors tree levels; deeper levels cycle through it.
func defaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgYellow),
		color.New(color.FgGreen),
		color.New(color.FgCyan),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
	}
}

// CapacityFromFlags turns the -order and -degree flags into a capacity.
// Exactly one of them must be set.
func CapacityFromFlags(order, degree int) (btree.Capacity, error) {
	switch {
	case order != 0 && degree != 0:
		return btree.Capacity{}, errors.New("set only one of -order and -degree")
	case order != 0:
		return btree.Order(order), nil
	case degree != 0:
		return btree.Degree(degree), nil
	}
	return btree.Capacity{}, errors.New("one of -order or -degree is required")
}

// Start prints the help text and runs commands until EXIT or end of input.
func (c *CLI) Start() error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if quit := c.Process(c.scanner.Text()); quit {
			return nil
		}
		c.printPrompt()
	}
	return errors.Wrap(c.scanner.Err(), "reading commands")
}

func (c *CLI) printHelp() {
	fmt.Fprintf(c.out, `
Balanced multiway tree (%s)

Available Commands:
  INS <key>...  Insert one or more integer keys
  DEL <key>...  Delete one occurrence of each key
  FIND <key>    Report whether a key is present
  SHOW          Print the tree, one node per line, indented by depth
  LIST          Print all keys in ascending order
  STATS         Print size, height and shape fingerprint
  CHECK         Verify the tree's structural invariants
  SEED <n>      Insert n random keys
  HELP          Print this text
  EXIT          Terminate this session
`, c.tree.Capacity())
}

func (c *CLI) printPrompt() {
	if c.prompt {
		fmt.Fprint(c.out, "> ")
	}
}

// Process runs a single command line and reports whether the session
// should end.
func (c *CLI) Process(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false
	}
	command := strings.ToLower(fields[0])
	c.log.WithFields(logrus.Fields{"command": command, "args": len(fields) - 1}).Debug("dispatch")
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command %q\n", fields[0])
	case "ins", "insert":
		c.processInsert(fields[1:])
	case "del", "delete":
		c.processDelete(fields[1:])
	case "find", "get":
		c.processFind(fields[1:])
	case "show":
		c.Show()
	case "list":
		c.processList()
	case "stats":
		c.processStats()
	case "check":
		c.processCheck()
	case "seed":
		c.processSeed(fields[1:])
	case "help":
		c.printHelp()
	case "exit", "quit":
		return true
	}
	return false
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Newf("invalid key %q", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (c *CLI) processInsert(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INS <key>...")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	for _, k := range keys {
		c.tree.Insert(k)
	}
	c.Show()
}

func (c *CLI) processDelete(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>...")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	for _, k := range keys {
		if _, ok := c.tree.Delete(k); !ok {
			fmt.Fprintf(c.out, "Key %d not found in the tree.\n", k)
		}
	}
	c.Show()
}

func (c *CLI) processFind(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: FIND <key>")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if c.tree.Has(keys[0]) {
		fmt.Fprintf(c.out, "Key %d found.\n", keys[0])
		return
	}
	fmt.Fprintf(c.out, "Key %d not found in the tree.\n", keys[0])
}

// Show prints every node in pre-order, indented four spaces per level and
// colored by depth.
func (c *CLI) Show() {
	if c.tree.IsEmpty() {
		fmt.Fprintln(c.out, "(empty)")
		return
	}
	c.tree.Walk(func(depth int, keys []int) bool {
		pad := strings.Repeat(" ", depth*indent)
		c.palette[depth%len(c.palette)].Fprintln(c.out, pad+joinKeys(keys))
		return true
	})
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func (c *CLI) processList() {
	var keys []int
	c.tree.Ascend(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	fmt.Fprintln(c.out, joinKeys(keys))
}

func (c *CLI) processStats() {
	fmt.Fprintf(c.out, "capacity:    %s (%d-%d keys per node)\n",
		c.tree.Capacity(), c.tree.Capacity().MinItems(), c.tree.Capacity().MaxItems())
	fmt.Fprintf(c.out, "keys:        %d\n", c.tree.Len())
	fmt.Fprintf(c.out, "height:      %d\n", c.tree.Height())
	fmt.Fprintf(c.out, "fingerprint: %016x\n", c.tree.Fingerprint())
}

func (c *CLI) processCheck() {
	if err := c.tree.Check(); err != nil {
		c.log.WithError(err).Warn("invariant check failed")
		fmt.Fprintf(c.out, "Check failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "OK")
}

func (c *CLI) processSeed(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(c.out, "invalid count %q\n", args[0])
		return
	}
	if err := c.Seed(n); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Inserted %d random keys.\n", n)
}

// Seed inserts n distinct random keys drawn from [0, 10n).
func (c *CLI) Seed(n int) error {
	keys, err := faker.RandomInt(0, 10*n-1, n)
	if err != nil {
		return errors.Wrap(err, "generating keys")
	}
	for _, k := range keys {
		c.tree.Insert(k)
	}
	c.log.WithFields(logrus.Fields{"count": len(keys), "len": c.tree.Len()}).Info("seeded")
	return nil
}
