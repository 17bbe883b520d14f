package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect tables and views in a doc",
}

var tablesListCmd = &cobra.Command{
	Use:   "list <doc-id>",
	Short: "List tables and views in a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesList,
}

var (
	tablesListLimit int
	tablesListSort  string
	tablesListTypes []string
)

var tablesGetCmd = &cobra.Command{
	Use:   "get <doc-id> <table-id-or-name>",
	Short: "Get details about a table or view",
	Args:  cobra.ExactArgs(2),
	RunE:  runTablesGet,
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Inspect columns of a table",
}

var columnsListCmd = &cobra.Command{
	Use:   "list <doc-id> <table-id-or-name>",
	Short: "List columns in a table",
	Args:  cobra.ExactArgs(2),
	RunE:  runColumnsList,
}

var columnsListVisible bool

var columnsGetCmd = &cobra.Command{
	Use:   "get <doc-id> <table-id-or-name> <column-id-or-name>",
	Short: "Get details about a column",
	Args:  cobra.ExactArgs(3),
	RunE:  runColumnsGet,
}

func init() {
	tablesListCmd.Flags().IntVar(&tablesListLimit, "limit", 0, "Maximum number of results")
	tablesListCmd.Flags().StringVar(&tablesListSort, "sort-by", "", "Sort order (e.g. name)")
	tablesListCmd.Flags().StringSliceVar(&tablesListTypes, "types", nil, "Table types to include (table, view)")

	columnsListCmd.Flags().BoolVar(&columnsListVisible, "visible-only", false, "Only return visible columns")

	tablesCmd.AddCommand(tablesListCmd)
	tablesCmd.AddCommand(tablesGetCmd)
	columnsCmd.AddCommand(columnsListCmd)
	columnsCmd.AddCommand(columnsGetCmd)
}

func runTablesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.ListTables(cmd.Context(), args[0], coda.ListTablesParams{
		Limit:      tablesListLimit,
		SortBy:     tablesListSort,
		TableTypes: tablesListTypes,
	})
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list.Items) == 0 {
		fmt.Fprintln(out, mutedRender("No tables found."))
		return nil
	}
	for _, table := range list.Items {
		fmt.Fprintf(out, "%s  %s %s\n", labelRender(table.ID), table.Name, mutedRender("("+string(table.TableType)+")"))
	}
	return nil
}

func runTablesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	table, err := client.GetTable(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("get table: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, table)
	}
	outputTable(cmd, table)
	return nil
}

func runColumnsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := coda.ListColumnsParams{}
	if columnsListVisible {
		params.VisibleOnly = &columnsListVisible
	}

	list, err := client.ListColumns(cmd.Context(), args[0], args[1], params)
	if err != nil {
		return fmt.Errorf("list columns: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	for _, col := range list.Items {
		detail := col.Format.Type
		if col.Formula != "" {
			detail += ", calculated"
		}
		fmt.Fprintf(out, "%s  %s %s\n", labelRender(col.ID), col.Name, mutedRender("("+detail+")"))
	}
	return nil
}

func runColumnsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	column, err := client.GetColumn(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("get column: %w", err)
	}

	return outputAsJSON(cmd, column)
}
