package main

import "github.com/mapmenu/mapmenu/cmd"

func main() {
	cmd.Execute()
}
