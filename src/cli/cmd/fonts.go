package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sofmeright/badgen/src/fonts"
)

var fontsLicense bool

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List built-in fonts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fontsLicense {
			fmt.Println(fonts.License)
			return nil
		}
		for _, name := range fonts.Names() {
			if name == fonts.DefaultFont {
				fmt.Printf("  %s (default)\n", name)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	fontsCmd.Flags().BoolVar(&fontsLicense, "license", false, "print the font license")

	rootCmd.AddCommand(fontsCmd)
}
