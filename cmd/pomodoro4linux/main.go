package main

import "github.com/ezchuang/pomodoro4linux/internal/cli"

func main() {
	cli.Execute()
}
