package cmd

import (
	"cmmgen/grammar"
	"cmmgen/lexer"
	"cmmgen/pattern"
	"cmmgen/scan"
	"fmt"
	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"io"
)

func init() {
	dumpCmd.AddCommand(dumpSpecCmd, dumpTemplateCmd, dumpTokensCmd)
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump what the generators collect",
}

var dumpSpecCmd = &cobra.Command{
	Use:   "spec [file]",
	Short: "Dump the indexed symbols of a grammar specification",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := grammar.DefaultSpec
		if len(args) > 0 {
			p = args[0]
		}

		list, err := grammar.ScanFile(p)
		if err != nil {
			return err
		}

		repr.Println(grammar.NewIndex(list))
		return nil
	},
}

var dumpTemplateCmd = &cobra.Command{
	Use:   "template [file]",
	Short: "Dump the patterns collected from a lexer rule template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pattern.DefaultTemplate
		if len(args) > 0 {
			p = args[0]
		}

		tpl, err := pattern.ScanFile(p)
		if err != nil {
			return err
		}

		repr.Println(struct {
			Tokens []string
			Width  int
		}{tpl.Tokens, tpl.Width})
		return nil
	},
}

var dumpTokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the line tokens production heads are recognised from",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := scan.ReadLines(args[0])
		if err != nil {
			return err
		}

		return PrintTokens(cmd.OutOrStdout(), lines)
	},
}

func PrintTokens(w io.Writer, lines []string) error {
	for i, line := range lines {
		toks, err := lexer.TokenizeLine(line)
		if err != nil {
			return scan.Wrap(fmt.Sprintf("line %v", i+1), err)
		}

		for _, t := range toks {
			fmt.Fprintf(w, "%4d %v\n", i+1, t.StringAlign())
		}
	}

	return nil
}
