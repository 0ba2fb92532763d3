package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/canpacis/bir/ast"
	"github.com/canpacis/bir/config"
	"github.com/canpacis/bir/parser"
)

var log = commonlog.GetLogger("bir")

// Envelope is the single JSON document bir prints on stdout. Content is the
// program on success and a parser.Diagnostic on failure.
type Envelope struct {
	Error   bool `json:"error"`
	Content any  `json:"content"`
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bir [source]",
		Short: "Parse Bir source text and print its syntax tree as JSON",
		Long: `bir parses the program text given as its only argument and prints
{"error":false,"content":<program>} or, when the text does not parse,
{"error":true,"content":{"message":...,"position":...}}.

Without an argument the empty program is printed.`,
		Args: cobra.MaximumNArgs(1),
		// The argument is program text; "-x" or "--help" are sources too.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := Envelope{Content: ast.NewProgram()}
			if len(args) == 1 {
				env = parse(args[0], cfg)
			}
			return write(cmd.OutOrStdout(), env)
		},
	}
}

func parse(src string, cfg *config.Config) Envelope {
	res, err := parser.Parse(src, parser.WithMaxDepth(cfg.MaximumNestingDepth))
	if err != nil {
		log.Debugf("parse failed: %s", err)
		return Envelope{Error: true, Content: parser.Diagnose(err)}
	}

	for _, a := range res.Ambiguities {
		log.Warningf("ambiguous input at %s", a)
	}
	log.Debugf("parsed %d nodes", ast.Count(res.Program))
	return Envelope{Content: res.Program}
}

func write(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func main() {
	commonlog.Configure(0, nil)
	cfg := config.Find(".")
	commonlog.Configure(cfg.VerbosityLevel, nil)
	log.Debugf("%s", versionString())

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bir:", err)
		os.Exit(1)
	}
}
