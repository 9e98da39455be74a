package main

import "github.com/mmuldo/colorscheme/cmd"

func main() {
	cmd.Execute()
}
