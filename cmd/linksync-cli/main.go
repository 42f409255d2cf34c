package main

import "linksync/cmd/linksync-cli/cmd"

func main() {
	cmd.Execute()
}
