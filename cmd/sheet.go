package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/solodev/pwaicons/internal/app"
	"github.com/spf13/cobra"
)

var sheetOut string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "write a labelled contact sheet of all four icons",
	Long:  `write a labelled 2x2 contact sheet of all four icons as a PNG.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.New(cfg, cmd.OutOrStdout())
		a.Logger = logger
		path, err := a.WriteSheet(cmd.Context(), sheetOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Created "+path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetCmd)
	sheetCmd.Flags().StringVarP(&sheetOut, "out", "o", "", "output file (default <static-dir>/"+app.SheetName+")")
}
