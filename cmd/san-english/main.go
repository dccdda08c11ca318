// san-english translates chess moves in Standard Algebraic Notation into
// English sentences.
package main

import (
	"fmt"
	"os"
)

const programVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
