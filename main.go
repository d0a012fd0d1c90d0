package main

import "audioleft/cmd"

func main() {
	cmd.Execute()
}
