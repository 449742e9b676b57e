package main

import "github.com/spf13/cobra"

func init() {
	var preferences, restrictions []string
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a lunch and dinner suggestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"preferences":  preferences,
				"restrictions": restrictions,
			}
			return printResponse(client().R().SetBody(payload).Post("/api/meals/generate"))
		},
	}
	generateCmd.Flags().StringSliceVarP(&preferences, "prefer", "p", nil, "Preferred ingredients for this request")
	generateCmd.Flags().StringSliceVarP(&restrictions, "restrict", "r", nil, "Extra dietary restrictions for this request")
	rootCmd.AddCommand(generateCmd)
}
