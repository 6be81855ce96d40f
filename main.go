package main

import "github.com/jsphweid/miws/cmd"

func main() {
	cmd.Execute()
}
