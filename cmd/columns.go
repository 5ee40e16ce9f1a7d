package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexkyllo/kqlalchemy/pkg/inspect"
	"github.com/alexkyllo/kqlalchemy/pkg/types"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "Reflect the column descriptors of a table",
	Long: `Reflect a table's metadata the way a host SQL toolkit would: column
names and types plus the (always empty) key and index constraints.

By default columns are read from information_schema over the TDS bridge;
--native reads them from a .show table management command instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)

	columnsCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	columnsCmd.Flags().Bool("native", false, "reflect via management command instead of information_schema")
	_ = viper.BindPFlag("columns.output", columnsCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("columns.native", columnsCmd.Flags().Lookup("native"))
}

func runColumns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	table := args[0]

	eng, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	if viper.GetBool("columns.native") {
		cols, err := eng.Dialect().ColumnsViaManagement(ctx, table)
		if err != nil {
			return err
		}
		slog.Debug("reflected columns natively", "table", table, "count", len(cols))
		return printColumns(table, cols, viper.GetString("columns.output"))
	}

	meta, err := inspect.Table(ctx, eng.Dialect(), table)
	if err != nil {
		return err
	}
	slog.Debug("reflected table", "table", table, "columns", len(meta.Columns))

	format := viper.GetString("columns.output")
	if format == "text" {
		return printColumns(table, meta.Columns, format)
	}
	return printResult(meta, format)
}

func printColumns(table string, cols []types.ColumnDescriptor, format string) error {
	if format != "text" {
		return printResult(map[string]any{"table": table, "columns": cols}, format)
	}
	for _, col := range cols {
		typ := col.Type.Name
		if col.Type.Precision != nil {
			if col.Type.Scale != nil {
				typ = fmt.Sprintf("%s(%d,%d)", typ, *col.Type.Precision, *col.Type.Scale)
			} else {
				typ = fmt.Sprintf("%s(%d)", typ, *col.Type.Precision)
			}
		}
		fmt.Printf("%s\t%s\n", col.Name, typ)
	}
	return nil
}
