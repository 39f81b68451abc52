package main

import "github.com/papapumpkin/menukit/cmd"

func main() {
	cmd.ExecuteMenuCLI()
}
