package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List bundled and user themes.

User themes live in ~/.config/subwin/themes/ as TOML files and override
bundled themes of the same name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := themeLoader.CurrentTheme()
		for _, name := range themeLoader.ListThemes() {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
