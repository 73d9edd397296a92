package main

import "github.com/mhalenza/ACFP/cmd"

func main() {
	cmd.Execute()
}
