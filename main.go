package main

import "github.com/hrpulse/hrpulse/cmd"

func main() {
	cmd.Execute()
}
