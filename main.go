package main

import "github.com/papapumpkin/prism/cmd"

func main() {
	cmd.Execute()
}
