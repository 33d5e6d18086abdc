package main

import (
	"github.com/QPC-github/secmgr/internal/cmd"
)

var version string // set by goreleaser

func init() {
	cmd.Version = version
}

func main() {
	cmd.Main()
}
