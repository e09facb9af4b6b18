package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/reqdeck/internal/api"
	"github.com/sadopc/reqdeck/internal/app"
	"github.com/sadopc/reqdeck/internal/config"
	"github.com/sadopc/reqdeck/internal/diff"
	curlimport "github.com/sadopc/reqdeck/internal/import/curl"
	httpproto "github.com/sadopc/reqdeck/internal/protocol/http"
	"github.com/sadopc/reqdeck/internal/runner"
	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "run":
			runCmd()
			return
		case "list":
			listCmd()
			return
		case "import":
			importCmd()
			return
		case "diff":
			diffCmd()
			return
		case "version":
			fmt.Printf("reqdeck %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `reqdeck - A terminal API testing tool

Usage:
  reqdeck [flags]                  Launch TUI (interactive mode)
  reqdeck <command> [args]         Run a subcommand

Commands:
  run       Dispatch a saved request by id and print the response
  list      List saved requests
  import    Save a request parsed from a curl command
  diff      Compare the two most recent executions of a request
  version   Print version information
  help      Show this help message

TUI Flags:
  --db <path>   Path to the SQLite database file
  --version     Print version and exit

Run 'reqdeck <command> --help' for more information about a command.
`)
}

func openStores(dbPath string) (*store.Store, *api.API, *runner.Runner, error) {
	cfg := config.Load()
	if dbPath == "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("creating data directory: %w", err)
		}
		dbPath = cfg.DBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	r := runner.New(st, httpproto.New(), cfg.DefaultTimeout)
	return st, api.New(st, r), r, nil
}

func runCmd() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dbFlag := fs.String("db", "", "Path to the SQLite database file")
	verboseFlag := fs.Bool("verbose", false, "Show status and timing on stderr")
	timeoutFlag := fs.Duration("timeout", 0, "Request timeout (overrides config)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reqdeck run <request-id> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Dispatch a saved request headlessly and print the response body.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Request dispatched, response status below 400\n")
		fmt.Fprintf(os.Stderr, "  1  Response status 400 or above\n")
		fmt.Fprintf(os.Stderr, "  2  Dispatch or storage error\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: request id is required\n\n")
		fs.Usage()
		os.Exit(2)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid request id %q\n", fs.Arg(0))
		os.Exit(2)
	}

	st, _, r, err := openStores(*dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	if *timeoutFlag > 0 {
		r.SetTimeout(*timeoutFlag)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := r.Run(ctx, id)
	var recordErr *runner.RecordError
	if err != nil && !errors.As(err, &recordErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verboseFlag {
		fmt.Fprintf(os.Stderr, "%s  %s  %s\n",
			result.Status, result.Duration.Round(time.Millisecond), byteCount(result.Size))
	}
	if recordErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", recordErr)
	}

	os.Stdout.Write(result.Body)
	if len(result.Body) > 0 && result.Body[len(result.Body)-1] != '\n' {
		fmt.Println()
	}

	if result.StatusCode >= 400 {
		os.Exit(1)
	}
}

func listCmd() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbFlag := fs.String("db", "", "Path to the SQLite database file")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	st, a, _, err := openStores(*dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	requests, err := a.Requests()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	for _, req := range requests {
		fmt.Printf("%4d  %-6s  %-24s  %s\n", req.ID, req.Method, req.Name, req.URL)
	}
}

func importCmd() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dbFlag := fs.String("db", "", "Path to the SQLite database file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reqdeck import [flags] [curl command]\n\n")
		fmt.Fprintf(os.Stderr, "Parse a curl command and save it as a request. Reads from\n")
		fmt.Fprintf(os.Stderr, "stdin when no command is given on the command line.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	input := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(input) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(2)
		}
		input = string(data)
	}

	fields, err := curlimport.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	st, a, _, err := openStores(*dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	id, msg, err := a.AddRequest(fields.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if _, err := a.UpdateRequest(id, fields); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("%s (id %d)\n", msg, id)
}

func diffCmd() {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	dbFlag := fs.String("db", "", "Path to the SQLite database file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reqdeck diff <request-id> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compare the response bodies of the two most recent executions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Bodies are identical\n")
		fmt.Fprintf(os.Stderr, "  1  Bodies differ\n")
		fmt.Fprintf(os.Stderr, "  2  Fewer than two executions, or an error\n")
	}
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: request id is required\n\n")
		fs.Usage()
		os.Exit(2)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid request id %q\n", fs.Arg(0))
		os.Exit(2)
	}

	st, a, _, err := openStores(*dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	entries, err := a.RequestHistory(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if len(entries) < 2 {
		fmt.Fprintf(os.Stderr, "Error: request %d has %d execution(s), need at least 2\n", id, len(entries))
		os.Exit(2)
	}

	// entries are newest first
	lines := diff.Lines(entries[1].ResponseBody, entries[0].ResponseBody)
	os.Stdout.WriteString(diff.Render(lines))
	if diff.Changed(lines) {
		os.Exit(1)
	}
}

func byteCount(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	dbFlag := flag.String("db", "", "Path to the SQLite database file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("reqdeck %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	st, a, r, err := openStores(*dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	model := app.New(a, r, config.Load())
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
