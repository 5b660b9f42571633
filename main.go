package main

import "github.com/voxium/voxium/tools/cmd"

func main() {
	cmd.Execute()
}
