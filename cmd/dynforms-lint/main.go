package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-dynforms/pkg/formdef"
)

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [dirs...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCheck that every form definition under each directory builds.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"forms"}
	}
	os.Exit(lint(dirs, os.Stdout, os.Stderr))
}

func lint(dirs []string, stdout, stderr io.Writer) int {
	failed := false
	for _, dir := range dirs {
		store, err := formdef.LoadFS(os.DirFS(dir))
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", dir, err)
			failed = true
			continue
		}
		fmt.Fprintf(stdout, "%s: %d form(s) ok\n", dir, len(store.IDs()))
	}
	if failed {
		return 1
	}
	return 0
}
