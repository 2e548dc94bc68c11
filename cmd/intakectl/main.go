package main

import "intake-insights-go/internal/cmd"

func main() {
	cmd.Execute()
}
