package main

import (
	"os"

	"github.com/alexkyllo/kqlalchemy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
