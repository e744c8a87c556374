package main

import "osupdater/cmd/osupdater/cmd"

func main() {
	cmd.Execute()
}
