// Command draftgen batch-generates outreach message template artifacts from
// CSV case data and shortlists cases eligible for data collection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "draftgen",
		Short:         "Generate outreach message templates from tabular case data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	viper.SetEnvPrefix("DRAFTGEN")
	viper.AutomaticEnv()

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newCategoriesCmd())
	return root
}
