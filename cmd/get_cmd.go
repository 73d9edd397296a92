package cmd

import (
	"fmt"
	"os"

	"github.com/mhalenza/ACFP/parse/acfp"
	"github.com/mhalenza/ACFP/pkg"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Input      string `json:"input"`      // 输入文件路径
	Section    string `json:"section"`    // 节名
	Subsection string `json:"subsection"` // 子节名
	Key        string `json:"key"`        // 查找的key
	Type       string `json:"type"`       // 转换的目标类型
}

var getParams *GetParams

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "look up a single field, optionally coerced to a type",
	Run:   getRun,
}

func init() {
	getParams = &GetParams{}
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path")
	getCmd.Flags().StringVarP(&getParams.Section, "section", "s", "", "section name")
	getCmd.Flags().StringVarP(&getParams.Subsection, "subsection", "u", "", "subsection name")
	getCmd.Flags().StringVarP(&getParams.Key, "key", "k", "", "field key")
	getCmd.Flags().StringVarP(&getParams.Type, "type", "t", "string", "value type: string|bool|int|int64|uint64|float64")
}

func getRun(cmd *cobra.Command, args []string) {
	if len(getParams.Key) == 0 {
		fmt.Println("no field key")
		os.Exit(1)
	}
	table, ok := parseInput(getParams.Input)
	if !ok {
		os.Exit(1)
	}

	sec := table.Section(getParams.Section).Subsection(getParams.Subsection)
	out, err := coerceField(sec, getParams.Key, getParams.Type)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func coerceField(sec acfp.Section, key, typ string) (string, error) {
	switch typ {
	case "string":
		v, ok := sec.Field(key)
		if !ok {
			return "", fmt.Errorf("field %q not found", key)
		}
		return v, nil
	case "bool":
		return formatField[bool](sec, key)
	case "int":
		return formatField[int](sec, key)
	case "int64":
		return formatField[int64](sec, key)
	case "uint64":
		return formatField[uint64](sec, key)
	case "float64":
		return formatField[float64](sec, key)
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}

func formatField[T acfp.Scalar](sec acfp.Section, key string) (string, error) {
	v, ok, err := acfp.FieldAs[T](sec, key)
	if !ok {
		return "", fmt.Errorf("field %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", v), nil
}

// parseInput validates the input path and parses it, reporting problems to
// stdout the way the other commands do.
func parseInput(input string) (acfp.Table, bool) {
	if len(input) == 0 {
		fmt.Println("no input file path")
		return nil, false
	}
	exist, err := pkg.CheckFileExist(input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return nil, false
	}
	if !exist {
		fmt.Println("input file not exist")
		return nil, false
	}
	table, err := acfp.ParseFile(input)
	if err != nil {
		fmt.Println("parse error:", err)
		return nil, false
	}
	return table, true
}
