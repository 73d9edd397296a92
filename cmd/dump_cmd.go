package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type DumpParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var dumpParams *DumpParams

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "parse a config file and dump the whole table as YAML",
	Run:   dumpRun,
}

func init() {
	dumpParams = &DumpParams{}
	dumpCmd.Flags().StringVarP(&dumpParams.Input, "input", "i", "", "input file path")
	dumpCmd.Flags().StringVarP(&dumpParams.Output, "output", "o", "", "output path, stdout when empty")
}

func dumpRun(cmd *cobra.Command, args []string) {
	table, ok := parseInput(dumpParams.Input)
	if !ok {
		os.Exit(1)
	}

	data, err := yaml.Marshal(table)
	if err != nil {
		fmt.Println("marshal error:", err)
		os.Exit(1)
	}

	if len(dumpParams.Output) == 0 {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(dumpParams.Output, data, 0o644); err != nil {
		fmt.Println("write output error:", err)
		os.Exit(1)
	}
}
