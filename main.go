package main

import "github.com/notargets/symfem/cmd"

func main() {
	cmd.Execute()
}
