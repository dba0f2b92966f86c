package cmd

import (
	"cmmgen/runner"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var testOpts struct {
	parser string
	ext    string
}

func init() {
	testCmd.Flags().StringVar(&testOpts.parser, "parser", runner.DefaultParser, "Parser executable")
	testCmd.Flags().StringVar(&testOpts.ext, "ext", runner.DefaultExt, "Source file extension")
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test [dir]",
	Short: "Run the parser over every source file of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := runner.DefaultDir
		if len(args) > 0 {
			dir = args[0]
		}

		results, err := runner.RunDir(runner.New(testOpts.parser), dir, testOpts.ext)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Status != 0 {
				failed++
			}
		}
		log.Infof("%v files, %v failed", len(results), failed)

		if len(results) == 0 {
			return errors.Errorf("no %v files in %v", testOpts.ext, dir)
		}

		return nil
	},
}
