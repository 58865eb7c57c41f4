package main

import "github.com/atikulmunna/logclean/internal/cmd"

func main() {
	cmd.Execute()
}
