package main

import (
	"context"
	"os"

	"github.com/adamluzsi/strsplit/cmd/strsplit/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
