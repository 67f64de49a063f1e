// Command pantig syllabifies Filipino words from the command line.
//
// Usage:
//
//	pantig split [word...]     split words (stdin when no args)
//	pantig check [file]        verify a word list or the dictionary build
//	pantig dict                print dictionary build statistics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
