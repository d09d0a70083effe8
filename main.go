package main

import "github.com/frankwiersma/amsterdam-flight-vibe/cmd"

func main() {
	cmd.Execute()
}
