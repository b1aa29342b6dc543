package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damalga/funkhunt/internal/catalogue"
)

// NewScanCmd creates the scan command: a one-shot listing of the books
// under a folder, without starting the TUI.
func NewScanCmd() *cobra.Command {
	var longOutput bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List the books found under a folder",
		Long:  `Scan a folder recursively and print the books it contains.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			scanner, err := catalogue.NewScanner(cfg.Library.Formats)
			if err != nil {
				return err
			}

			books := scanner.Scan(args[0])
			if len(books) == 0 {
				fmt.Printf("No books found under %s\n", args[0])
				return nil
			}
			for _, book := range books {
				if longOutput {
					fmt.Printf("%s\t%s\n", book.Name, book.Path)
				} else {
					fmt.Println(book.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&longOutput, "long", "l", false, "print full paths")
	return cmd
}
