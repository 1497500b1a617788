package main

import "github.com/notargets/compflow/cmd"

func main() {
	cmd.Execute()
}
