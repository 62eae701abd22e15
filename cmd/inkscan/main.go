package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/inkscan/pkgs/lexer"
	"github.com/spf13/cobra"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Global flags
var (
	initialMode string
	showTrivia  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inkscan [file]",
	Short: "Tokenize a source file and print its token stream",
	Long: `inkscan runs the lexer over a file (or stdin, with no argument) and
prints one line per token: its kind, byte span, and source text.
Whitespace and comment tokens are left out unless --trivia is given.
It exists for debugging the lexer directly, outside of any parser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: scanCommand,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkscan %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&initialMode, "mode", "m", "markup", "Initial lexer mode: markup, math, or code")
	rootCmd.PersistentFlags().BoolVar(&showTrivia, "trivia", false, "Include whitespace and comment tokens in the output")
	rootCmd.AddCommand(versionCmd)
}

func scanCommand(cmd *cobra.Command, args []string) error {
	var (
		src []byte
		err error
	)
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file %s: %w", args[0], err)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}

	mode, err := parseMode(initialMode)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	return scan(w, string(src), mode)
}

// scan drives the lexer to End, switching into ModeRaw on an opening
// RawDelim and back out again on the matching closing one. Mode
// switching is normally the surrounding parser's job; this reproduces
// just enough of it to print a raw block's replayed sub-tokens.
func scan(w io.Writer, text string, outerMode lexer.Mode) error {
	lx := lexer.New(text, outerMode)
	start := 0
	inRaw := false

	for {
		kind := lx.Next()
		end := lx.Cursor()

		if kind == lexer.End {
			fmt.Fprintf(w, "%-14s [%d, %d)\n", kind, start, end)
			return nil
		}

		if showTrivia || !kind.IsTrivia() {
			fmt.Fprintf(w, "%-14s [%d, %d) %q\n", kind, start, end, text[start:end])
		}

		if kind == lexer.Error {
			if syn := lx.TakeError(); syn != nil {
				fmt.Fprintf(os.Stderr, "error at %d: %s\n", start, syn.Message)
			}
		}

		switch {
		case kind == lexer.RawDelim && !inRaw:
			lx.SetMode(lexer.ModeRaw)
			inRaw = true
		case kind == lexer.RawDelim && inRaw:
			lx.SetMode(outerMode)
			inRaw = false
		}

		start = end
	}
}

func parseMode(name string) (lexer.Mode, error) {
	switch name {
	case "markup":
		return lexer.ModeMarkup, nil
	case "math":
		return lexer.ModeMath, nil
	case "code":
		return lexer.ModeCode, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want markup, math, or code", name)
	}
}
