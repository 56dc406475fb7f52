// Package nwalign is a small toolkit for optimal global alignment of symbol
// sequences — from the dynamic-programming core to a batch CSV runner and CLI.
//
// 🚀 What is nwalign?
//
//	A Needleman–Wunsch implementation that brings together:
//		• Core DP: score table + multi-direction traceback table
//		• Deterministic reconstruction: Diagonal > Up > Left on ties
//		• Self-check: score re-derived from the aligned pair
//		• Batch: bounded parallel alignment of many pairs, in input order
//		• CLI: CSV in, "aligned1 aligned2 score" lines out
//
// Under the hood, everything is organized under these packages:
//
//	nw/          — Build, Traceback, Rescore, Align, AlignString
//	records/     — CSV pair reader and alignment line writer
//	batch/       — errgroup fan-out with slog logging and Prometheus metrics
//	config/      — defaults, YAML file and NWALIGN_* environment settings
//	cmd/nwalign/ — cobra command wiring the above
//
// Quick example:
//
//	al, _ := nw.AlignString("AAA", "AA")
//	fmt.Println(al.Aligned1, al.Aligned2, al.Score) // AAA -AA 0
//
//	go install github.com/katalvlaran/nwalign/cmd/nwalign@latest
package nwalign
