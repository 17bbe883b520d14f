package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List and manage pages in a doc",
}

var pagesListCmd = &cobra.Command{
	Use:   "list <doc-id>",
	Short: "List pages in a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runPagesList,
}

var (
	pagesListLimit     int
	pagesListPageToken string
)

var pagesGetCmd = &cobra.Command{
	Use:   "get <doc-id> <page-id-or-name>",
	Short: "Get details about a page",
	Args:  cobra.ExactArgs(2),
	RunE:  runPagesGet,
}

var pagesCreateCmd = &cobra.Command{
	Use:   "create <doc-id> <name>",
	Short: "Create a new page in a doc",
	Args:  cobra.ExactArgs(2),
	RunE:  runPagesCreate,
}

var (
	pagesCreateSubtitle string
	pagesCreateIcon     string
	pagesCreateParent   string
	pagesCreateContent  string
	pagesCreateFormat   string
)

var pagesUpdateCmd = &cobra.Command{
	Use:   "update <doc-id> <page-id-or-name>",
	Short: "Update properties or content of a page",
	Args:  cobra.ExactArgs(2),
	RunE:  runPagesUpdate,
}

var (
	pagesUpdateName     string
	pagesUpdateSubtitle string
	pagesUpdateIcon     string
	pagesUpdateContent  string
	pagesUpdateFormat   string
	pagesUpdateMode     string
)

var pagesDeleteCmd = &cobra.Command{
	Use:   "delete <doc-id> <page-id-or-name>",
	Short: "Delete a page from a doc",
	Args:  cobra.ExactArgs(2),
	RunE:  runPagesDelete,
}

func init() {
	pagesListCmd.Flags().IntVar(&pagesListLimit, "limit", 0, "Maximum number of results")
	pagesListCmd.Flags().StringVar(&pagesListPageToken, "page-token", "", "Token for the next page of results")

	pagesCreateCmd.Flags().StringVar(&pagesCreateSubtitle, "subtitle", "", "Subtitle of the page")
	pagesCreateCmd.Flags().StringVar(&pagesCreateIcon, "icon", "", "Icon name")
	pagesCreateCmd.Flags().StringVar(&pagesCreateParent, "parent", "", "Parent page ID (creates a subpage)")
	pagesCreateCmd.Flags().StringVar(&pagesCreateContent, "content", "", "Initial canvas content")
	pagesCreateCmd.Flags().StringVar(&pagesCreateFormat, "format", "markdown", "Content format: html or markdown")

	pagesUpdateCmd.Flags().StringVar(&pagesUpdateName, "name", "", "New page name")
	pagesUpdateCmd.Flags().StringVar(&pagesUpdateSubtitle, "subtitle", "", "New subtitle")
	pagesUpdateCmd.Flags().StringVar(&pagesUpdateIcon, "icon", "", "Icon name")
	pagesUpdateCmd.Flags().StringVar(&pagesUpdateContent, "content", "", "Canvas content to append or replace")
	pagesUpdateCmd.Flags().StringVar(&pagesUpdateFormat, "format", "markdown", "Content format: html or markdown")
	pagesUpdateCmd.Flags().StringVar(&pagesUpdateMode, "mode", "append", "Insertion mode: append or replace")

	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesGetCmd)
	pagesCmd.AddCommand(pagesCreateCmd)
	pagesCmd.AddCommand(pagesUpdateCmd)
	pagesCmd.AddCommand(pagesDeleteCmd)
}

func runPagesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.ListPages(cmd.Context(), args[0], coda.ListPagesParams{
		Limit:     pagesListLimit,
		PageToken: pagesListPageToken,
	})
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list.Items) == 0 {
		fmt.Fprintln(out, mutedRender("No pages found."))
		return nil
	}
	for _, page := range list.Items {
		name := page.Name
		if page.IsHidden {
			name += " " + mutedRender("(hidden)")
		}
		fmt.Fprintf(out, "%s  %s\n", labelRender(page.ID), name)
	}
	if list.NextPageToken != "" {
		fmt.Fprintf(out, "\n%s %s\n", mutedRender("Next page token:"), list.NextPageToken)
	}
	return nil
}

func runPagesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.GetPage(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("get page: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, page)
	}
	outputPage(cmd, page)
	return nil
}

func runPagesCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := coda.CreatePageParams{
		Name:         args[1],
		Subtitle:     pagesCreateSubtitle,
		IconName:     pagesCreateIcon,
		ParentPageID: pagesCreateParent,
	}
	if pagesCreateContent != "" {
		params.PageContent = &coda.PageContent{
			Type: "canvas",
			CanvasContent: coda.CanvasContent{
				Format:  pagesCreateFormat,
				Content: pagesCreateContent,
			},
		}
	}

	result, err := client.CreatePage(cmd.Context(), args[0], params)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", successRender("Created"), args[1], result.ID)
	return nil
}

func runPagesUpdate(cmd *cobra.Command, args []string) error {
	params := coda.UpdatePageParams{
		Name:     pagesUpdateName,
		Subtitle: pagesUpdateSubtitle,
		IconName: pagesUpdateIcon,
	}
	if pagesUpdateContent != "" {
		params.ContentUpdate = &coda.PageContentUpdate{
			InsertionMode: pagesUpdateMode,
			CanvasContent: coda.CanvasContent{
				Format:  pagesUpdateFormat,
				Content: pagesUpdateContent,
			},
		}
	}
	if params.Name == "" && params.Subtitle == "" && params.IconName == "" && params.ContentUpdate == nil {
		return fmt.Errorf("nothing to update: pass --name, --subtitle, --icon, and/or --content")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.UpdatePage(cmd.Context(), args[0], args[1], params)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Updated"), result.ID)
	return nil
}

func runPagesDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.DeletePage(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Deleted"), result.ID)
	return nil
}
