package main

import "github.com/mouse-blink/rootscan/cmd"

func main() {
	cmd.Execute()
}
