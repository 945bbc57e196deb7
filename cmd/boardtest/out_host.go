//go:build !rp2040 && !rp2350

package main

import "os"

func initOutput() {}

func writeLine(b []byte) {
	_, _ = os.Stdout.Write(b)
}
