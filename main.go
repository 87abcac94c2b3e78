package main

import "github.com/skmap-bio/skmap/cmd"

func main() {
	cmd.Execute()
}
