package main

import "nestlist/cmd/nestlist-cli/cmd"

func main() {
	cmd.Execute()
}
