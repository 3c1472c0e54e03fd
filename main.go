package main

import "github.com/arnvik/paperscore/cmd"

func main() {
	cmd.Execute()
}
