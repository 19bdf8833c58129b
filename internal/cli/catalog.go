package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freeatlas/resourcefinder/internal/catalog"
	"github.com/freeatlas/resourcefinder/internal/config"
	"github.com/freeatlas/resourcefinder/internal/output"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and validate the resource catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog resources",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full record for one resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog's data-integrity preconditions",
	RunE:  runCatalogValidate,
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	records := cat.Resources
	if catalogCategory != "" {
		c := catalog.Category(catalogCategory)
		if !c.Valid() {
			return fmt.Errorf("unknown category: %s", catalogCategory)
		}
		records = cat.ByCategory(c)
	}

	return output.Output(resolveFormat(cfg), records)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	resource := cat.Get(args[0])
	if resource == nil {
		return fmt.Errorf("resource not found: %s", args[0])
	}

	return output.Output(resolveFormat(cfg), resource)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	term := NewTerminal()

	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Println(term.Colorize(ColorRed, "Catalog validation failed:"))
		return err
	}

	fmt.Println(term.Colorize(ColorGreen,
		fmt.Sprintf("Catalog OK: %d resources, %d keyword clusters", cat.Len(), len(cat.Clusters))))
	return nil
}
