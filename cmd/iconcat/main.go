// Package main provides the entry point for the iconcat CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/iconcat/cmd/iconcat/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
