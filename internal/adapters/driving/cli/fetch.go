package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

var (
	fetchType string
	fetchJSON bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [id]",
	Short: "Fetch full details of one item",
	Long: `Runs the same fetch as the MCP fetch tool and prints the item.
The id is one returned by search. Without --type every type is tried.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchType, "type", "t", "", "item type when known: project, customer or document")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "output the item as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	req := domain.FetchRequest{ID: args[0]}
	if fetchType != "" {
		rt, err := domain.ParseResourceType(fetchType)
		if err != nil {
			return err
		}
		req.Type = &rt
	}

	res, err := queryService.Fetch(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if fetchJSON {
		return printJSON(cmd, res)
	}

	out := cmd.OutOrStdout()
	p := newPainter(out)
	fmt.Fprintln(out, res.Content)
	fmt.Fprintf(out, "%s %s\n", p.paint(faintStyle, "URL:"), res.URL)

	keys := make([]string, 0, len(res.Metadata))
	for k, v := range res.Metadata {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s %s\n", p.paint(faintStyle, k+":"), res.Metadata[k])
	}
	return nil
}
