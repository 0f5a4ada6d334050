package main

import "attraction-catalog/cmd"

func main() {
	cmd.Execute()
}
