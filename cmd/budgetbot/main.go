package main

import "github.com/ogulcanaydogan/aws-budget-notification-bot/internal/cli"

func main() {
	cli.Execute()
}
