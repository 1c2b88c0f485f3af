package main

import "github.com/inkwell-sh/inkwell/cmd"

func main() {
	cmd.Execute()
}
