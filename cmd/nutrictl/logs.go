package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	logCmd := &cobra.Command{Use: "log", Short: "Meal log operations"}

	// add
	var name, mealType string
	var calories float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Log a meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || mealType == "" {
				return fmt.Errorf("--name and --type required")
			}
			payload := map[string]interface{}{
				"meal_name": name,
				"meal_type": mealType,
				"calories":  calories,
				"nutrition": map[string]float64{"calories": calories},
			}
			return printResponse(client().R().SetBody(payload).Post("/api/meals/log"))
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Meal name (required)")
	addCmd.Flags().StringVarP(&mealType, "type", "t", "", "Meal type (required)")
	addCmd.Flags().Float64VarP(&calories, "calories", "c", 0, "Calories")
	_ = addCmd.MarkFlagRequired("name")
	logCmd.AddCommand(addCmd)

	// list
	var limit, days, offset int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent meal logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().R().
				SetQueryParam("limit", strconv.Itoa(limit)).
				SetQueryParam("days", strconv.Itoa(days)).
				SetQueryParam("offset", strconv.Itoa(offset)).
				Get("/api/meals/log"))
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "l", 10, "Max entries to return")
	listCmd.Flags().IntVarP(&days, "days", "d", 7, "Lookback window in days")
	listCmd.Flags().IntVarP(&offset, "offset", "o", 0, "Pagination offset")
	logCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get LOG_ID",
		Short: "Get one meal log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().R().Get("/api/meals/log/" + args[0]))
		},
	}
	logCmd.AddCommand(getCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete LOG_ID",
		Short: "Delete a meal log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().R().Delete("/api/meals/log/" + args[0]))
		},
	}
	logCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(logCmd)
}
