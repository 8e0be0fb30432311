package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/evilsocket/islazy/tui"

	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/log"
)

const version = "1.0.0"

var (
	writeFlag  = flag.Bool("w", false, "Write result back to the source file(s) instead of stdout.")
	diffFlag   = flag.Bool("diff", false, "Print a colorized before/after diff instead of the beautified output.")
	auditFlag  = flag.Bool("audit", false, "Check discovered hosts for geolocation anomalies (crawl only).")
	verifyFlag = flag.Bool("verify", false, "Re-beautify the output and assert it is unchanged (idempotence check).")
)

func main() {
	opts := config.ParseOptions()

	if *opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if !tui.Effects() {
		if *opts.NoColors {
			fmt.Printf("\n\nWARNING: Terminal colors have been disabled, view will be very limited.\n\n")
		} else {
			fmt.Printf("\n\nWARNING: This terminal does not support colors, view will be very limited.\n\n")
		}
	}

	log.Init(opts, false, "")

	cfg, err := config.Load(*opts.ConfigFilePath)
	if err != nil {
		log.Error("loading configuration: %s", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := runFmt(cfg, []string{}); err != nil {
			log.Fatal("%s", err)
		}
		return
	}

	switch args[0] {
	case "watch":
		if len(args) < 2 {
			log.Fatal("usage: jsbeautify watch DIR")
		}
		if err := runWatch(cfg, args[1]); err != nil {
			log.Fatal("%s", err)
		}
	case "crawl":
		if len(args) < 2 {
			log.Fatal("usage: jsbeautify crawl URL")
		}
		if err := runCrawl(cfg, args[1]); err != nil {
			log.Fatal("%s", err)
		}
	case "fmt":
		if err := runFmt(cfg, args[1:]); err != nil {
			log.Fatal("%s", err)
		}
	default:
		// no recognized subcommand: treat every argument as a file for fmt
		if err := runFmt(cfg, args); err != nil {
			log.Fatal("%s", err)
		}
	}
}
