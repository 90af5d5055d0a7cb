// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listIsPalindrome string
	listMinLength    string
	listMaxLength    string
	listWordCount    string
	listContainsChar string
)

func client() *Client {
	return NewClient(serverURL, apiKey)
}

// printJSON renders API responses for the terminal.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering response:", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

var addCmd = &cobra.Command{
	Use:   "add <value>",
	Short: "Register a string value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := client().CreateString(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(rec)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <value>",
	Short: "Look a string up by its content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := client().GetString(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(rec)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <value>",
	Short: "Delete a string by its content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := client().DeleteString(args[0]); err != nil {
			fail(err)
		}
		fmt.Println("Deleted.")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List strings, optionally with structured filters",
	Run: func(cmd *cobra.Command, args []string) {
		filters := map[string]string{}
		if listIsPalindrome != "" {
			filters["is_palindrome"] = listIsPalindrome
		}
		if listMinLength != "" {
			filters["min_length"] = listMinLength
		}
		if listMaxLength != "" {
			filters["max_length"] = listMaxLength
		}
		if listWordCount != "" {
			filters["word_count"] = listWordCount
		}
		if listContainsChar != "" {
			filters["contains_character"] = listContainsChar
		}

		result, err := client().ListStrings(filters)
		if err != nil {
			fail(err)
		}
		printJSON(result)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Filter strings with a natural-language query",
	Long: `Filter strings with a natural-language query, for example:

  stringvault ask "all single word palindromic strings"
  stringvault ask "strings longer than 5 containing the letter x"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := client().FilterByNaturalLanguage(args[0])
		if err != nil {
			fail(err)
		}
		printJSON(result)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the registry is alive",
	Run: func(cmd *cobra.Command, args []string) {
		if err := client().Health(); err != nil {
			fail(err)
		}
		fmt.Println("Registry is healthy.")
	},
}

func init() {
	listCmd.Flags().StringVar(&listIsPalindrome, "palindrome", "", "filter by palindrome status (true/false)")
	listCmd.Flags().StringVar(&listMinLength, "min-length", "", "minimum length")
	listCmd.Flags().StringVar(&listMaxLength, "max-length", "", "maximum length")
	listCmd.Flags().StringVar(&listWordCount, "word-count", "", "exact word count")
	listCmd.Flags().StringVar(&listContainsChar, "contains", "", "required character")

	rootCmd.AddCommand(addCmd, getCmd, rmCmd, listCmd, askCmd, healthCmd)
}
