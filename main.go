package main

import "github.com/jsphweid/lilyparse/cmd"

func main() {
	cmd.Execute()
}
