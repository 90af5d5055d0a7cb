// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// stringvault is the operator CLI for the string registry service.
//
// It talks to a running registry over HTTP. The server address and an
// optional API key come from flags, the environment, or an optional
// config.yaml next to the binary.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/stringvault/pkg/logging"
)

// Config holds CLI configuration loaded from config.yaml.
type Config struct {
	ServerURL string `yaml:"server_url"`
	APIKey    string `yaml:"api_key"`
}

var (
	config    Config
	serverURL string
	apiKey    string
	logger    = logging.New(logging.Config{Level: logging.LevelWarn, Service: "cli"})
)

var rootCmd = &cobra.Command{
	Use:   "stringvault",
	Short: "Operator CLI for the string registry service",
	Long: `stringvault manages records in a running string registry:
submit values, look them up by content, delete them, and run
structured or natural-language filters.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"registry base URL (default http://localhost:12230)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "",
		"API key, if the registry requires one")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// config.yaml is optional; flags and env win over it.
		if data, err := os.ReadFile("config.yaml"); err == nil {
			if err := yaml.Unmarshal(data, &config); err != nil {
				logger.Warn("ignoring malformed config.yaml", "error", err)
			}
		}
		if serverURL == "" {
			serverURL = os.Getenv("STRINGVAULT_SERVER")
		}
		if serverURL == "" {
			serverURL = config.ServerURL
		}
		if serverURL == "" {
			serverURL = "http://localhost:12230"
		}
		if apiKey == "" {
			apiKey = os.Getenv("STRINGVAULT_API_KEY")
		}
		if apiKey == "" {
			apiKey = config.APIKey
		}
	}
}
