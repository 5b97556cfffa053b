package main

import "github.com/envelope-zero/paycheck/cmd"

func main() {
	cmd.Execute()
}
