// Command list-ops prints the catalog of registered waveform operations:
// name, shape signature, supported element-type rows, and optionally the
// full documentation text.
//
// Usage:
//
//	list-ops             # one line per operation
//	list-ops -doc        # include documentation
//	list-ops -doc mean   # a single operation
package main

import (
	"flag"
	"fmt"
	"strings"

	wavedsp "github.com/tphakala/go-waveform-dsp"
)

const docIndent = "    "

func main() {
	showDoc := flag.Bool("doc", false, "Print each operation's documentation")
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = wavedsp.Operations()
	}

	for _, name := range names {
		op, ok := wavedsp.Lookup(name)
		if !ok {
			fmt.Printf("%s: not registered\n", name)
			continue
		}
		printOp(op, *showDoc)
	}
}

func printOp(op *wavedsp.Op, showDoc bool) {
	fmt.Printf("%s %s\n", op.Name(), op.Signature())
	for _, row := range op.DTypes() {
		tags := make([]string, len(row))
		for i, d := range row {
			tags[i] = d.String()
		}
		fmt.Printf("%s[%s]\n", docIndent, strings.Join(tags, ", "))
	}
	if showDoc && op.Doc() != "" {
		for _, line := range strings.Split(op.Doc(), "\n") {
			fmt.Printf("%s%s\n", docIndent, line)
		}
	}
	fmt.Println()
}
