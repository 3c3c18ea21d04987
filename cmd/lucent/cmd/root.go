package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"lucent/internal/diag"
	"lucent/internal/lexer"
	"lucent/internal/parser"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var rootCmd = &cobra.Command{
	Use:   "lucent <file>",
	Short: "Lucent language front-end",
	Long: `Lucent scans and parses a source file into its syntax tree and
prints it, along with any diagnostics produced on the way.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(tokensCmd, checkCmd, versionCmd)
}

func run(path string) error {
	start := time.Now()

	nodes, p, err := compile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%# v\n", pretty.Formatter(nodes))
	fmt.Printf("%s in %s with %s\n",
		successStyle.Render("Compiled"),
		time.Since(start),
		countStyle.Render(warningCount(len(p.Warnings()))))
	return nil
}

// compile runs the scan/parse pipeline over a file, printing warnings as
// rendered diagnostics and, on a fatal diagnostic, the rendered error.
func compile(path string) ([]parser.Node, *parser.Parser, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	tokens, err := lexer.NewScanner(string(source)).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	p := parser.NewParser(tokens, string(source))
	nodes, err := p.Parse()

	for _, w := range p.Warnings() {
		fmt.Print(p.Render(w))
		fmt.Println()
	}

	if err != nil {
		if d, ok := err.(*diag.Diagnostic); ok {
			fmt.Print(p.Render(d))
		}
		fmt.Println(failStyle.Render("Could not compile due to error above."))
		return nil, nil, err
	}
	return nodes, p, nil
}

func warningCount(n int) string {
	if n == 1 {
		return "1 warning"
	}
	return fmt.Sprintf("%d warnings", n)
}
