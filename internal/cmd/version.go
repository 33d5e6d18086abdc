package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"slices"
)

var (
	Version  string // set by main
	versions = make(map[string]string)
	mainDeps = []string{
		"gopkg.in/yaml.v3",
		"github.com/knadh/koanf/v2",
		"github.com/deckarep/golang-set/v2",
	}
)

func version() string {
	if Version == "" {
		return versions["github.com/QPC-github/secmgr"]
	}
	return Version
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Failed to read build information.")
	}
	versions[bi.Main.Path] = bi.Main.Version
	for _, mod := range bi.Deps {
		if slices.Contains(mainDeps, mod.Path) {
			versions[mod.Path] = mod.Version
		}
	}
}

func showVersion() {
	fmt.Printf("secmgr %s\n", version())
	for _, mod := range mainDeps {
		fmt.Printf("%s %s\n", mod, versions[mod])
	}
	fmt.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
