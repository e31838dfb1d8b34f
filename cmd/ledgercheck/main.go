package main

import (
	"os"

	"github.com/cleared-dev/ledgercheck/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
