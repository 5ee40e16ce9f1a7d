package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexkyllo/kqlalchemy/pkg/query"
)

var queryCmd = &cobra.Command{
	Use:   "query [flags] <sql-file>",
	Short: "Run a SQL statement over the bridge connection",
	Long: `Run a SQL statement against the cluster's TDS endpoint and print the
result set. Pass "-" to read the statement from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	_ = viper.BindPFlag("query.output", queryCmd.Flags().Lookup("output"))
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sqlText, err := readStatement(args[0])
	if err != nil {
		return err
	}

	eng, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	frame, err := query.Run(ctx, eng.DB(), sqlText)
	if err != nil {
		return err
	}
	slog.Debug("query finished", "rows", frame.NumRows(), "columns", frame.NumCols())

	format := viper.GetString("query.output")
	if format == "text" {
		printFrame(frame)
		return nil
	}
	return printResult(frame, format)
}

func readStatement(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading statement from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read SQL file: %s", source)
	}
	return string(data), nil
}

func printFrame(frame *query.Frame) {
	fmt.Println(strings.Join(frame.Columns, "\t"))
	for _, row := range frame.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}
