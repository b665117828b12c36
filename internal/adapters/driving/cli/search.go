package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

var (
	searchType  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search projects, customers and documents",
	Long: `Runs the same search as the MCP search tool and prints the results.
Results are grouped by type: projects, then customers, then documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "restrict to one type: project, customer or document")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results per type (0 = settings default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	q := domain.SearchQuery{Text: args[0], Limit: searchLimit}
	if searchType != "" {
		rt, err := domain.ParseResourceType(searchType)
		if err != nil {
			return err
		}
		q.Type = &rt
	}

	results, err := queryService.Search(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		if results == nil {
			results = []domain.SearchResult{}
		}
		return printJSON(cmd, results)
	}

	outputSearchTable(cmd, results)
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return
	}

	p := newPainter(out)
	fmt.Fprintln(out, "Results:")
	fmt.Fprintln(out)
	for i := range results {
		r := &results[i]
		fmt.Fprintf(out, "  [%d] %s %s\n", i+1,
			p.paint(typeStyle, "("+r.SourceType.String()+")"),
			p.paint(titleStyle, r.Title))
		fmt.Fprintf(out, "      ID: %s\n", r.ID)
		if r.Snippet != "" {
			fmt.Fprintf(out, "      %s\n", r.Snippet)
		}
		fmt.Fprintf(out, "      %s\n", p.paint(faintStyle, r.URL))
		fmt.Fprintln(out)
	}
}
