package main

import "github.com/spf13/cobra"

func init() {
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show weekly nutrient progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().R().Get("/api/nutrition/progress"))
		},
	}
	rootCmd.AddCommand(progressCmd)
}
