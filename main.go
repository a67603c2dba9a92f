package main

import "github.com/miladmahdian/professional-signup-hub/cmd"

func main() {
	cmd.Execute()
}
