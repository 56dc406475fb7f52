// Command nwalign aligns sequence pairs read from CSV with Needleman–Wunsch
// and prints "aligned1 aligned2 score" per row.
//
//	nwalign align pairs.csv
//	nwalign align --gap -1 --route < pairs.csv
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
