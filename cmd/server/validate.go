package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-folio/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate [cv.json] [portfolio.json]",
	Short: "Validate the content documents against their schemas",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cvPath, portfolioPath := contentPaths(appConfig.SiteDir)
		if len(args) > 0 {
			cvPath = args[0]
		}
		if len(args) > 1 {
			portfolioPath = args[1]
		}

		failed := false
		for _, c := range []struct {
			path     string
			validate func([]byte) error
		}{
			{cvPath, model.ValidateCV},
			{portfolioPath, model.ValidatePortfolio},
		} {
			doc, err := os.ReadFile(c.path)
			if err == nil {
				err = c.validate(doc)
			}
			if err != nil {
				failed = true
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", c.path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", c.path)
		}
		if failed {
			return fmt.Errorf("content validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
