package main

import "github.com/KaramelBytes/shelflens-cli/cmd"

func main() {
	cmd.Execute()
}
