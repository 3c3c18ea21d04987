package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lucent/internal/lexer"
)

const version = "0.1.0"

var tokensCmd = &cobra.Command{
	Use:           "tokens <file>",
	Short:         "Dump the token stream for a source file",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		tokens, err := lexer.NewScanner(string(source)).Scan()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:           "check <file>",
	Short:         "Parse a source file without printing its syntax tree",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		_, p, err := compile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok, %s\n", args[0], warningCount(len(p.Warnings())))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lucent version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("lucent", version)
	},
}
