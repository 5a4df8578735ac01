package main

import "github.com/mikekinsman/aztk/cmd"

func main() {
	cmd.Execute()
}
