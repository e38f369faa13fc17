package main

import "github.com/meltworks/slagview-cli/cmd"

func main() {
	cmd.Execute()
}
