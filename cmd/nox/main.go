package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	nox "github.com/ernieIzde8ski/not-oblivion-xml"
)

const (
	appName     = "nox"
	historyFile = ".nox_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("nox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", nox.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(nox.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`nox %s

Usage:
  %s run <file.nox>      Reduce each line of a file and print its expressions.
  %s tokens <file.nox>   Scan a whole file and print its token stream.
  %s repl                Start the interactive line reader.
  %s version             Print the compiled version

`, nox.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.nox>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	for _, line := range strings.Split(string(src), "\n") {
		reduced, err := nox.ExtractLine(line)
		if err != nil {
			if nox.IsNoTokens(err) {
				continue
			}
			fmt.Printf("ERROR: %v\n", err)
			continue
		}
		fmt.Println(reduced)
	}
	return 0
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens <file.nox>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	tokens, err := nox.ParseString(string(src))
	if err != nil {
		if nox.IsNoTokens(err) {
			return 0
		}
		fmt.Fprintln(os.Stderr, nox.WrapErrorWithName(err, file, string(src)))
		return 1
	}
	if err := nox.RenderTokens(os.Stdout, tokens); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	fmt.Println()
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) (ret int) {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	showTokens := false

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			case ":tokens":
				showTokens = !showTokens
				if showTokens {
					fmt.Println("token display on")
				} else {
					fmt.Println("token display off")
				}
			default:
				fmt.Printf("unknown command. Type :quit to exit, :tokens to toggle token display.\n")
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if showTokens {
			scanned, err := nox.ScanLine(line)
			if err != nil && !nox.IsNoTokens(err) {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			if err == nil {
				fmt.Println(green(scanned.String()))
			}
		}

		reduced, err := nox.ExtractLine(line)
		if err != nil {
			if nox.IsNoTokens(err) {
				continue
			}
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(reduced.String()))
		ln.AppendHistory(line)
	}

	return 0
}
