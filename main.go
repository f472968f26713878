package main

import "github.com/DevExpGBB/envload/cmd"

func main() {
	cmd.Execute()
}
