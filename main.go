package main

import "github.com/docdyhr/mcp-wordpress-sub011/cmd"

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
