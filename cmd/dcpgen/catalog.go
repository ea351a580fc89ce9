package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcpgen/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the productions of the active catalog",
		Long: `Lists name, arity, weight, signature and template of every production.
With --yaml the built-in table is printed instead, as a starting point for a
custom catalog file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				_, err := cmd.OutOrStdout().Write(catalog.DefaultTable())
				return err
			}
			cat, err := a.cfg.Catalog()
			if err != nil {
				return err
			}
			return printCatalog(cmd, cat)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the built-in table as YAML")

	return cmd
}

func printCatalog(cmd *cobra.Command, cat *catalog.Catalog) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tARITY\tWEIGHT\tSIGNATURE\tTEMPLATE")
	for _, p := range cat.Productions() {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\t%s\n", p.Name, p.Arity, p.Weight, p.Signature, p.Template())
	}
	return w.Flush()
}
