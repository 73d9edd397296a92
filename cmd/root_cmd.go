package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "acfp",
	Short: "Acfp reads INI-like configuration files.",
	Long:  "Acfp parses INI-like configuration files into a section/subsection/field table. It can look up a single field with type coercion or dump the whole table as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Acfp",
	Long:  `All software has versions. This is Acfp's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Acfp v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)
}
