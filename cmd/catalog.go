package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/regions"
	"attraction-catalog/feature/attraction/registry"

	"github.com/spf13/cobra"
)

var (
	listProvince string
	listCategory string
)

// catalogCmd is the parent command for read-only catalog queries.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the declared attraction catalog",
	Long:  `Query the declared catalog without touching the database or storage.`,
}

// catalogListCmd prints catalog records, optionally filtered.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog records",
	Long: `List active catalog records as JSON.

With --province, lists that province's full record sequence, inactive
records included. With --category, lists active records tagged with the
category across all provinces.`,
	RunE: runCatalogList,
}

// catalogGetCmd prints one record by id.
var catalogGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one record by attraction id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogGet,
}

// catalogSearchCmd prints active records matching a term.
var catalogSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search active records by name or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogSearch,
}

func init() {
	catalogListCmd.Flags().StringVar(&listProvince, "province", "", "List one province by alias key")
	catalogListCmd.Flags().StringVar(&listCategory, "category", "", "List active records tagged with a category")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	RootCmd.AddCommand(catalogCmd)
}

func buildRegistry() (*registry.Registry, error) {
	reg, err := registry.New(regions.Providers()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog registry: %w", err)
	}
	return reg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	var records []models.AttractionRecord
	switch {
	case listProvince != "":
		records = reg.ByProvince(listProvince)
	case listCategory != "":
		records = reg.ByCategory(listCategory)
	default:
		records = reg.All()
	}

	if records == nil {
		records = []models.AttractionRecord{}
	}
	return printJSON(records)
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	rec, ok := reg.ByID(args[0])
	if !ok {
		return fmt.Errorf("no attraction with id %q", args[0])
	}
	return printJSON(rec)
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	records := reg.Search(args[0])
	if records == nil {
		records = []models.AttractionRecord{}
	}
	return printJSON(records)
}
