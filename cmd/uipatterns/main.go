package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gnana997/uipatterns/pkg/docgen"
	mcpserver "github.com/gnana997/uipatterns/pkg/mcp"
	"github.com/gnana997/uipatterns/pkg/mcplog"
	"github.com/gnana997/uipatterns/pkg/patterns"
	"github.com/gnana997/uipatterns/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "serve":
		err = runServe(args)
	case "list":
		err = runList(args)
	case "show":
		err = runShow(args)
	case "states":
		err = runStates(args)
	case "validate":
		err = runValidate(args)
	case "version":
		fmt.Printf("uipatterns %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadQuery returns the QueryService for an optional external patterns file,
// falling back to the bundled library when path is empty.
func loadQuery(path string) (*patterns.QueryService, error) {
	if path == "" {
		return patterns.Default(), nil
	}
	return patterns.LoadAndQuery(path)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	patternsFlag := fs.String("patterns", "", "path to an external patterns JSON file")
	watch := fs.Bool("watch", false, "reload the external patterns file on change")
	logFile := fs.String("log-file", "", "append JSONL tool-call log to this file")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(*logLevel),
		Format: util.FormatText,
		Output: os.Stderr,
	})

	path, err := resolvePatternsPath(*patternsFlag)
	if err != nil {
		return err
	}

	logPath, err := resolveLogFile(*logFile)
	if err != nil {
		return err
	}
	toolLog, err := mcplog.Open(logPath)
	if err != nil {
		return err
	}
	defer toolLog.Close()

	if *watch && path != "" {
		w, err := patterns.NewWatcher(path, logger)
		if err != nil {
			return fmt.Errorf("failed to load patterns: %w", err)
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		// The watcher is the server's query source: each tool call resolves
		// the currently active library, so a reload takes effect on the
		// next call.
		srv, err := mcpserver.NewServer(w, toolLog)
		if err != nil {
			return err
		}
		logger.Info("starting MCP server", "patterns", path, "watch", true)
		return srv.ServeStdio()
	}

	qs, err := loadQuery(path)
	if err != nil {
		return fmt.Errorf("failed to load patterns: %w", err)
	}

	srv, err := mcpserver.NewServer(mcpserver.Static(qs), toolLog)
	if err != nil {
		return err
	}
	logger.Info("starting MCP server", "patterns", len(qs.Library.Patterns))
	return srv.ServeStdio()
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	patternsFlag := fs.String("patterns", "", "path to an external patterns JSON file")
	keyword := fs.String("keyword", "", "filter by keyword")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := resolvePatternsPath(*patternsFlag)
	if err != nil {
		return err
	}
	qs, err := loadQuery(path)
	if err != nil {
		return err
	}

	for _, p := range qs.ListPatterns(*keyword) {
		fmt.Printf("%-12s %s\n", p.Name, p.Description)
	}
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	patternsFlag := fs.String("patterns", "", "path to an external patterns JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: uipatterns show <component>")
	}

	path, err := resolvePatternsPath(*patternsFlag)
	if err != nil {
		return err
	}
	qs, err := loadQuery(path)
	if err != nil {
		return err
	}

	gen, err := docgen.NewGenerator(qs)
	if err != nil {
		return err
	}
	doc, err := gen.Render(patterns.ComponentName(fs.Arg(0)))
	if err != nil {
		return err
	}
	fmt.Println(doc)
	return nil
}

func runStates(args []string) error {
	fs := flag.NewFlagSet("states", flag.ExitOnError)
	patternsFlag := fs.String("patterns", "", "path to an external patterns JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: uipatterns states <component> <state>")
	}

	path, err := resolvePatternsPath(*patternsFlag)
	if err != nil {
		return err
	}
	qs, err := loadQuery(path)
	if err != nil {
		return err
	}

	ss, err := qs.GetStateStyle(patterns.ComponentName(fs.Arg(0)), patterns.ComponentState(fs.Arg(1)))
	if err != nil {
		return err
	}

	fmt.Println(ss.Description)
	for _, prop := range sortedStyleKeys(ss.Styles) {
		fmt.Printf("  %s: %s\n", prop, ss.Styles[prop])
	}
	return nil
}

func runValidate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: uipatterns validate <file>")
	}

	lib, _, err := patterns.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	if errs := lib.ValidateCanonical(); len(errs) > 0 {
		fmt.Printf("%s: valid, but not a full catalog:\n", args[0])
		for _, e := range errs {
			fmt.Printf("  - %v\n", e)
		}
		return nil
	}

	fmt.Printf("%s: %d patterns, all invariants hold\n", args[0], len(lib.Patterns))
	return nil
}

func sortedStyleKeys(styles map[string]string) []string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printUsage() {
	fmt.Println("Usage: uipatterns <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve      Start MCP server over the pattern catalog")
	fmt.Println("  list       List patterns in the catalog")
	fmt.Println("  show       Print the Markdown reference for a component")
	fmt.Println("  states     Print a component's styles for one state")
	fmt.Println("  validate   Validate an external patterns JSON file")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
