package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	desktopapp "github.com/chrisjbillington/desktop-app"
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage

	dirFlag := flag.String("path", "", "directory to create or delete shortcuts in instead of the platform default")
	quiet := flag.Bool("q", false, "don't print the names of files created or deleted")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	action := args[0]
	if action != "install" && action != "uninstall" {
		log.Printf("unknown action %q", action)
		usage()
		os.Exit(2)
	}

	opts := desktopapp.Options{Dir: *dirFlag}

	for _, exePath := range args[1:] {
		switch action {
		case "install":
			created, err := desktopapp.Install(exePath, opts)
			if err != nil {
				log.Fatal(err)
			}
			report(*quiet, "created", created)
		case "uninstall":
			removed, err := desktopapp.Uninstall(exePath, opts)
			if err != nil {
				log.Fatal(err)
			}
			report(*quiet, "deleted", removed)
		}
	}
}

func report(quiet bool, verb string, files []string) {
	if quiet {
		return
	}
	for _, f := range files {
		fmt.Printf(" -> %s %s\n", verb, f)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: desktop-app [flags] install|uninstall <executable>...

Create (or remove) a Start menu shortcut (Windows) or .desktop file
(Linux) for the given application executables. An executable may ship a
desktop-app.json next to it naming the org, display name and icon
files; everything defaults from the executable name otherwise.

flags:
`)
	flag.PrintDefaults()
}
