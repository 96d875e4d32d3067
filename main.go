package main

import "lpcr-compare/cmd"

func main() {
	cmd.Execute()
}
