package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/manifoldco/promptui"

	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/log"
	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

// runFmt beautifies stdin or the named files, writing to stdout unless
// -w is set, in which case it writes each file back in place after an
// interactive confirmation (mirroring session/prompt.go's exit()
// IsConfirm prompt) whenever more than one file would be overwritten.
func runFmt(cfg config.Configuration, files []string) error {
	if len(files) == 0 {
		source, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return beautifyOne(cfg, "<stdin>", string(source), false)
	}

	write := *writeFlag
	if write && len(files) > 1 && !confirmOverwrite(len(files)) {
		write = false
	}

	for _, path := range files {
		source, err := ioutil.ReadFile(path)
		if err != nil {
			log.Error("reading %s: %s", path, err)
			continue
		}
		if err := beautifyOne(cfg, path, string(source), write); err != nil {
			log.Error("beautifying %s: %s", path, err)
		}
	}
	return nil
}

func confirmOverwrite(count int) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Overwrite %d files in place", count),
		IsConfirm: true,
		Default:   "n",
	}
	answer, _ := prompt.Run()
	return answer == "y" || answer == "Y"
}

func beautifyOne(cfg config.Configuration, path, source string, write bool) error {
	result := jsbeautify.BeautifyString(source, cfg.BeautifyOptions())

	if *verifyFlag {
		again := jsbeautify.BeautifyString(result, cfg.BeautifyOptions())
		if again != result {
			return fmt.Errorf("%s: beautify output is not idempotent", path)
		}
	}

	if *diffFlag {
		printDiff(path, source, result)
		return nil
	}

	if write && path != "<stdin>" {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return ioutil.WriteFile(path, []byte(result), info.Mode())
	}

	fmt.Print(result)
	return nil
}

// printDiff renders a minimal unified-looking before/after diff,
// coloring additions and removals the way proxy/handler.go colors its
// request-log line with aurora's Red/Green/Cyan/Magenta wraps.
func printDiff(path, before, after string) {
	if before == after {
		fmt.Println(aurora.Cyan(fmt.Sprintf("%s: unchanged", path)))
		return
	}

	fmt.Println(aurora.Magenta(fmt.Sprintf("--- %s (original)", path)))
	fmt.Println(aurora.Magenta(fmt.Sprintf("+++ %s (beautified)", path)))
	fmt.Println(aurora.Red("- " + before))
	fmt.Println(aurora.Green("+ " + after))
}
