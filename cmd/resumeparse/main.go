// Command resumeparse parses resumes from the command line.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/parser"
	"github.com/dgallion1/resumeparse/internal/resume"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "resumeparse",
		Short:        "Extract structured records from resumes",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("heuristics", "", "YAML file overriding parse heuristics")
	root.PersistentFlags().Bool("compact", false, "print JSON without indentation")
	root.PersistentFlags().Int("max-pdf-pages", 20, "reject PDFs with more pages (0 disables)")

	root.AddCommand(newParseCmd(), newTokensCmd(), newDumpCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a resume file and print the record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := heuristics(cmd)
			if err != nil {
				return err
			}
			tokens, err := decodeFile(cmd, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resume.Parse(tokens, cfg))
		},
	}
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <tokens.json>",
		Short: "Parse a JSON token dump and print the record",
		Long: `Reads a JSON array of tokens, as produced by "resumeparse dump", and
runs the parser over it. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := heuristics(cmd)
			if err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var tokens []layout.Token
			if err := json.NewDecoder(r).Decode(&tokens); err != nil {
				return fmt.Errorf("decode tokens: %w", err)
			}
			return printJSON(cmd, resume.Parse(tokens, cfg))
		},
	}
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the decoded tokens of a file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := decodeFile(cmd, args[0])
			if err != nil {
				return err
			}
			if lines, _ := cmd.Flags().GetBool("lines"); lines {
				cfg, err := heuristics(cmd)
				if err != nil {
					return err
				}
				return printJSON(cmd, layout.BuildLines(tokens, cfg.Layout))
			}
			return printJSON(cmd, tokens)
		},
	}
	cmd.Flags().Bool("lines", false, "print grouped lines instead of raw tokens")
	return cmd
}

func heuristics(cmd *cobra.Command) (resume.Config, error) {
	path, _ := cmd.Flags().GetString("heuristics")
	return resume.LoadConfigFile(path)
}

func decodeFile(cmd *cobra.Command, path string) ([]layout.Token, error) {
	maxPages, _ := cmd.Flags().GetInt("max-pdf-pages")
	dec, err := parser.Options{MaxPDFPages: maxPages}.ForFile(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := dec.Decode(bytes.NewReader(data), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tokens, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if compact, _ := cmd.Flags().GetBool("compact"); !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
