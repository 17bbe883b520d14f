package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List and inspect named formulas",
}

var formulasListCmd = &cobra.Command{
	Use:   "list <doc-id>",
	Short: "List named formulas in a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormulasList,
}

var (
	formulasListLimit     int
	formulasListPageToken string
	formulasListSort      string
)

var formulasGetCmd = &cobra.Command{
	Use:   "get <doc-id> <formula-id-or-name>",
	Short: "Get a named formula and its current value",
	Args:  cobra.ExactArgs(2),
	RunE:  runFormulasGet,
}

func init() {
	formulasListCmd.Flags().IntVar(&formulasListLimit, "limit", 0, "Maximum number of results")
	formulasListCmd.Flags().StringVar(&formulasListPageToken, "page-token", "", "Token for the next page of results")
	formulasListCmd.Flags().StringVar(&formulasListSort, "sort-by", "", "Sort order (name)")

	formulasCmd.AddCommand(formulasListCmd)
	formulasCmd.AddCommand(formulasGetCmd)
}

func runFormulasList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.ListFormulas(cmd.Context(), args[0], coda.ListFormulasParams{
		Limit:     formulasListLimit,
		PageToken: formulasListPageToken,
		SortBy:    formulasListSort,
	})
	if err != nil {
		return fmt.Errorf("list formulas: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list.Items) == 0 {
		fmt.Fprintln(out, mutedRender("No formulas found."))
		return nil
	}
	for _, f := range list.Items {
		fmt.Fprintf(out, "%s  %s\n", labelRender(f.ID), f.Name)
	}
	if list.NextPageToken != "" {
		fmt.Fprintf(out, "\n%s %s\n", mutedRender("Next page token:"), list.NextPageToken)
	}
	return nil
}

func runFormulasGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	formula, err := client.GetFormula(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("get formula: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, formula)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelRender("Name:"), formula.Name)
	fmt.Fprintf(out, "%s %s\n", labelRender("ID:"), formula.ID)
	fmt.Fprintf(out, "%s %v\n", labelRender("Value:"), formula.Value)
	return nil
}
