// Command wallplan runs the coverage planner from the command line.
package main

import "github.com/trowelbot/wallplan/cmd/wallplan/cmd"

func main() {
	cmd.Execute()
}
