package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags
var version = "0.1.0-dev"

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the funkhunt version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("funkhunt " + version)
		},
	}
}
