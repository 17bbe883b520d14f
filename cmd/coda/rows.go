package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List and edit rows in a table",
}

var rowsListCmd = &cobra.Command{
	Use:   "list <doc-id> <table-id-or-name>",
	Short: "List rows in a table",
	Long: `List rows in a table.

Example:
  coda rows list AbCDeFGH grid-pqRst-U --query 'Status="Complete"' --limit 20
  coda rows list AbCDeFGH Tasks --column-names --json`,
	Args: cobra.ExactArgs(2),
	RunE: runRowsList,
}

var (
	rowsListQuery       string
	rowsListSort        string
	rowsListColumnNames bool
	rowsListValueFormat string
	rowsListVisible     bool
	rowsListLimit       int
	rowsListPageToken   string
)

var rowsGetCmd = &cobra.Command{
	Use:   "get <doc-id> <table-id-or-name> <row-id-or-name>",
	Short: "Get a single row",
	Args:  cobra.ExactArgs(3),
	RunE:  runRowsGet,
}

var (
	rowsGetColumnNames bool
	rowsGetValueFormat string
)

var rowsUpsertCmd = &cobra.Command{
	Use:   "upsert <doc-id> <table-id-or-name> <rows-json>",
	Short: "Insert or update rows",
	Long: `Insert or update rows in a table. Rows are passed as a JSON array of
{"cells": [{"column": ..., "value": ...}]} objects.

Example:
  coda rows upsert AbCDeFGH Tasks '[{"cells":[{"column":"Name","value":"Ship it"}]}]' --key-columns Name`,
	Args: cobra.ExactArgs(3),
	RunE: runRowsUpsert,
}

var (
	rowsUpsertKeyColumns     []string
	rowsUpsertDisableParsing bool
)

var rowsUpdateCmd = &cobra.Command{
	Use:   "update <doc-id> <table-id-or-name> <row-id-or-name> <row-json>",
	Short: "Update the cells of a row",
	Args:  cobra.ExactArgs(4),
	RunE:  runRowsUpdate,
}

var rowsUpdateDisableParsing bool

var rowsDeleteCmd = &cobra.Command{
	Use:   "delete <doc-id> <table-id-or-name> <row-id>...",
	Short: "Delete one or more rows",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runRowsDelete,
}

var buttonCmd = &cobra.Command{
	Use:   "button",
	Short: "Push buttons in table cells",
}

var buttonPushCmd = &cobra.Command{
	Use:   "push <doc-id> <table-id-or-name> <row-id-or-name> <column-id-or-name>",
	Short: "Push a button in a table cell",
	Args:  cobra.ExactArgs(4),
	RunE:  runButtonPush,
}

func init() {
	rowsListCmd.Flags().StringVar(&rowsListQuery, "query", "", `Row filter, e.g. 'Status="Complete"'`)
	rowsListCmd.Flags().StringVar(&rowsListSort, "sort-by", "", "Column to sort by (or \"natural\")")
	rowsListCmd.Flags().BoolVar(&rowsListColumnNames, "column-names", false, "Key values by column name instead of ID")
	rowsListCmd.Flags().StringVar(&rowsListValueFormat, "value-format", "", "Cell value format: simple, simpleWithArrays, rich")
	rowsListCmd.Flags().BoolVar(&rowsListVisible, "visible-only", false, "Only return visible rows")
	rowsListCmd.Flags().IntVar(&rowsListLimit, "limit", 0, "Maximum number of results")
	rowsListCmd.Flags().StringVar(&rowsListPageToken, "page-token", "", "Token for the next page of results")

	rowsGetCmd.Flags().BoolVar(&rowsGetColumnNames, "column-names", false, "Key values by column name instead of ID")
	rowsGetCmd.Flags().StringVar(&rowsGetValueFormat, "value-format", "", "Cell value format: simple, simpleWithArrays, rich")

	rowsUpsertCmd.Flags().StringSliceVar(&rowsUpsertKeyColumns, "key-columns", nil, "Columns used as keys for matching existing rows")
	rowsUpsertCmd.Flags().BoolVar(&rowsUpsertDisableParsing, "disable-parsing", false, "Store cell values verbatim")

	rowsUpdateCmd.Flags().BoolVar(&rowsUpdateDisableParsing, "disable-parsing", false, "Store cell values verbatim")

	rowsCmd.AddCommand(rowsListCmd)
	rowsCmd.AddCommand(rowsGetCmd)
	rowsCmd.AddCommand(rowsUpsertCmd)
	rowsCmd.AddCommand(rowsUpdateCmd)
	rowsCmd.AddCommand(rowsDeleteCmd)
	buttonCmd.AddCommand(buttonPushCmd)
}

func runRowsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := coda.ListRowsParams{
		Query:       rowsListQuery,
		SortBy:      rowsListSort,
		ValueFormat: coda.ValueFormat(rowsListValueFormat),
		Limit:       rowsListLimit,
		PageToken:   rowsListPageToken,
	}
	if rowsListColumnNames {
		params.UseColumnNames = &rowsListColumnNames
	}
	if rowsListVisible {
		params.VisibleOnly = &rowsListVisible
	}

	list, err := client.ListRows(cmd.Context(), args[0], args[1], params)
	if err != nil {
		return fmt.Errorf("list rows: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list.Items) == 0 {
		fmt.Fprintln(out, mutedRender("No rows found."))
		return nil
	}
	for _, row := range list.Items {
		fmt.Fprintf(out, "%s  %s\n", labelRender(row.ID), row.Name)
	}
	if list.NextPageToken != "" {
		fmt.Fprintf(out, "\n%s %s\n", mutedRender("Next page token:"), list.NextPageToken)
	}
	return nil
}

func runRowsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := coda.GetRowParams{ValueFormat: coda.ValueFormat(rowsGetValueFormat)}
	if rowsGetColumnNames {
		params.UseColumnNames = &rowsGetColumnNames
	}

	row, err := client.GetRow(cmd.Context(), args[0], args[1], args[2], params)
	if err != nil {
		return fmt.Errorf("get row: %w", err)
	}

	return outputAsJSON(cmd, row)
}

func runRowsUpsert(cmd *cobra.Command, args []string) error {
	var rows []coda.RowEdit
	if err := json.Unmarshal([]byte(args[2]), &rows); err != nil {
		return fmt.Errorf("parse rows: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	params := coda.UpsertRowsParams{
		Rows:       rows,
		KeyColumns: rowsUpsertKeyColumns,
	}
	if rowsUpsertDisableParsing {
		params.DisableParsing = &rowsUpsertDisableParsing
	}

	result, err := client.UpsertRows(cmd.Context(), args[0], args[1], params)
	if err != nil {
		return fmt.Errorf("upsert rows: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d row(s) submitted\n", successRender("Upserted"), len(rows))
	for _, id := range result.AddedRowIDs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", mutedRender(id))
	}
	return nil
}

func runRowsUpdate(cmd *cobra.Command, args []string) error {
	var row coda.RowEdit
	if err := json.Unmarshal([]byte(args[3]), &row); err != nil {
		return fmt.Errorf("parse row: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	var disableParsing *bool
	if rowsUpdateDisableParsing {
		disableParsing = &rowsUpdateDisableParsing
	}

	result, err := client.UpdateRow(cmd.Context(), args[0], args[1], args[2], row, disableParsing)
	if err != nil {
		return fmt.Errorf("update row: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Updated"), result.ID)
	return nil
}

func runRowsDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	docID, tableID, rowIDs := args[0], args[1], args[2:]

	if len(rowIDs) == 1 {
		result, err := client.DeleteRow(cmd.Context(), docID, tableID, rowIDs[0])
		if err != nil {
			return fmt.Errorf("delete row: %w", err)
		}
		if outputJSON {
			return outputAsJSON(cmd, result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Deleted"), result.ID)
		return nil
	}

	result, err := client.DeleteRows(cmd.Context(), docID, tableID, rowIDs)
	if err != nil {
		return fmt.Errorf("delete rows: %w", err)
	}
	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d row(s)\n", successRender("Deleted"), len(result.RowIDs))
	return nil
}

func runButtonPush(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.PushButton(cmd.Context(), args[0], args[1], args[2], args[3])
	if err != nil {
		return fmt.Errorf("push button: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s button %s on row %s\n", successRender("Pushed"), result.ColumnID, result.RowID)
	return nil
}
