package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List and manage docs",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List docs accessible by the user",
	Long: `List Coda docs accessible by the user.

Example:
  coda docs list --query "roadmap" --limit 10
  coda docs list --owner --json`,
	Args: cobra.NoArgs,
	RunE: runDocsList,
}

var (
	docsListOwner     bool
	docsListPublished bool
	docsListQuery     string
	docsListWorkspace string
	docsListFolder    string
	docsListLimit     int
	docsListPageToken string
)

var docsGetCmd = &cobra.Command{
	Use:   "get <doc-id>",
	Short: "Get metadata about a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsGet,
}

var docsCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsCreate,
}

var (
	docsCreateSource    string
	docsCreateTimezone  string
	docsCreateFolder    string
	docsCreateWorkspace string
)

var docsUpdateCmd = &cobra.Command{
	Use:   "update <doc-id>",
	Short: "Update the title or icon of a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUpdate,
}

var (
	docsUpdateTitle string
	docsUpdateIcon  string
)

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <doc-id>",
	Short: "Permanently delete a doc",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

func init() {
	docsListCmd.Flags().BoolVar(&docsListOwner, "owner", false, "Show only docs owned by the user")
	docsListCmd.Flags().BoolVar(&docsListPublished, "published", false, "Show only published docs")
	docsListCmd.Flags().StringVar(&docsListQuery, "query", "", "Search term to filter results")
	docsListCmd.Flags().StringVar(&docsListWorkspace, "workspace", "", "Show only docs in the given workspace")
	docsListCmd.Flags().StringVar(&docsListFolder, "folder", "", "Show only docs in the given folder")
	docsListCmd.Flags().IntVar(&docsListLimit, "limit", 0, "Maximum number of results")
	docsListCmd.Flags().StringVar(&docsListPageToken, "page-token", "", "Token for the next page of results")

	docsCreateCmd.Flags().StringVar(&docsCreateSource, "source-doc", "", "ID of a doc to copy")
	docsCreateCmd.Flags().StringVar(&docsCreateTimezone, "timezone", "", "Timezone for the doc")
	docsCreateCmd.Flags().StringVar(&docsCreateFolder, "folder", "", "Folder to place the doc in")
	docsCreateCmd.Flags().StringVar(&docsCreateWorkspace, "workspace", "", "Workspace to place the doc in")

	docsUpdateCmd.Flags().StringVar(&docsUpdateTitle, "title", "", "New title")
	docsUpdateCmd.Flags().StringVar(&docsUpdateIcon, "icon", "", "Icon name")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsGetCmd)
	docsCmd.AddCommand(docsCreateCmd)
	docsCmd.AddCommand(docsUpdateCmd)
	docsCmd.AddCommand(docsDeleteCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.ListDocs(cmd.Context(), coda.ListDocsParams{
		IsOwner:     docsListOwner,
		IsPublished: docsListPublished,
		Query:       docsListQuery,
		WorkspaceID: docsListWorkspace,
		FolderID:    docsListFolder,
		Limit:       docsListLimit,
		PageToken:   docsListPageToken,
	})
	if err != nil {
		return fmt.Errorf("list docs: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list.Items) == 0 {
		fmt.Fprintln(out, mutedRender("No docs found."))
		return nil
	}
	for _, doc := range list.Items {
		fmt.Fprintf(out, "%s  %s\n", labelRender(doc.ID), doc.Name)
	}
	if list.NextPageToken != "" {
		fmt.Fprintf(out, "\n%s %s\n", mutedRender("Next page token:"), list.NextPageToken)
	}
	return nil
}

func runDocsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	doc, err := client.GetDoc(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get doc: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, doc)
	}
	outputDoc(cmd, doc)
	return nil
}

func runDocsCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	doc, err := client.CreateDoc(cmd.Context(), coda.CreateDocParams{
		Title:       args[0],
		SourceDoc:   docsCreateSource,
		Timezone:    docsCreateTimezone,
		FolderID:    docsCreateFolder,
		WorkspaceID: docsCreateWorkspace,
	})
	if err != nil {
		return fmt.Errorf("create doc: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, doc)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", successRender("Created"), doc.Name, doc.ID)
	return nil
}

func runDocsUpdate(cmd *cobra.Command, args []string) error {
	if docsUpdateTitle == "" && docsUpdateIcon == "" {
		return fmt.Errorf("nothing to update: pass --title and/or --icon")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.UpdateDoc(cmd.Context(), args[0], coda.UpdateDocParams{
		Title:    docsUpdateTitle,
		IconName: docsUpdateIcon,
	})
	if err != nil {
		return fmt.Errorf("update doc: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Updated"), args[0])
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if _, err := client.DeleteDoc(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete doc: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successRender("Deleted"), args[0])
	return nil
}
