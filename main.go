package main

import "github.com/naka-gawa/github-achievements/cmd"

func main() {
	cmd.Execute()
}
