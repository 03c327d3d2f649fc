package main

import "github.com/ceramiqa/quality-management/cmd"

func main() {
	cmd.Execute()
}
