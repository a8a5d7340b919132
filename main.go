package main

import "github.com/cronviz/cronviz/cmd"

func main() {
	cmd.Execute()
}
