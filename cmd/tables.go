package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the configured database",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	_ = viper.BindPFlag("tables.output", tablesCmd.Flags().Lookup("output"))
}

func runTables(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	eng, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	names, err := eng.Dialect().TableNames(ctx)
	if err != nil {
		return err
	}
	slog.Debug("listed tables", "count", len(names))

	format := viper.GetString("tables.output")
	if format == "text" {
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}
	return printResult(map[string]any{"tables": names}, format)
}
