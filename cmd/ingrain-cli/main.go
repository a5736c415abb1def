package main

import "ingrain/cmd/ingrain-cli/cmd"

func main() {
	cmd.Execute()
}
