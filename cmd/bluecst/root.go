package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akrennmair/bluecst/internal/config"
	"github.com/akrennmair/bluecst/parser"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile    string
	format     string
	outputFile string
	trace      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "bluecst [flags] file.blue",
		Short: "Parse a Blue program and print its concrete syntax tree",
		Long: `bluecst tokenizes and parses a Blue source file and prints the
resulting concrete syntax tree.

Output formats:
  text    - one sibling chain per line, children indented below
  yaml    - nested YAML document
  spew    - Go structure dump
  tokens  - the token stream, one token per line`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}

			if err := run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts.outputFile, args[0]); err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "output format: text, yaml, spew or tokens")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "if non-empty, where the output will be written to")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "trace grammar rules to stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	return cmd
}

// loadConfig merges the config file, if any, with the flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("trace") {
		cfg.Trace = opts.trace
	}
	if flags.Changed("no-color") {
		cfg.Color = !opts.noColor
	}
	color.NoColor = color.NoColor || !cfg.Color

	return cfg, cfg.Validate()
}

func run(stdout, stderr io.Writer, cfg *config.Config, outputFile, sourceFile string) error {
	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("reading file %s failed: %w", sourceFile, err)
	}

	tokens, err := parser.Tokenize(sourceFile, string(source))
	if err != nil {
		return err
	}

	var out []byte
	if cfg.Format == config.FormatTokens {
		out = renderTokens(tokens)
	} else {
		p := parser.NewParser(sourceFile, tokens)
		if cfg.Trace {
			p.SetLogOutput(stderr)
		}
		root, err := p.Parse()
		if err != nil {
			return err
		}
		if out, err = render(cfg.Format, root); err != nil {
			return err
		}
	}

	if outputFile == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		return fmt.Errorf("couldn't write to output file %s: %w", outputFile, err)
	}
	return nil
}

func render(format string, root *parser.Node) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		return parser.EncodeYAML(root)
	case config.FormatSpew:
		return []byte(spew.Sdump(root)), nil
	default:
		return []byte(parser.Sprint(root)), nil
	}
}

func renderTokens(tokens []parser.Token) []byte {
	var out []byte
	for _, tok := range tokens {
		out = fmt.Appendf(out, "%d\t%s\t%s\n", tok.Line, tok.Type, tok)
	}
	return out
}

func printError(w io.Writer, err error) {
	var perr *parser.Error
	if errors.As(err, &perr) {
		color.New(color.FgRed, color.Bold).Fprintf(w, "%s: ", perr.Kind)
		fmt.Fprintln(w, perr.Error())
		return
	}
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
