package main

import "github.com/Markofbear/travel-planner-2025/cmd"

func main() {
	cmd.Execute()
}
