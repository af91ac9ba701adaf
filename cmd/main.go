package main

import (
	"fmt"
	"os"

	"github.com/thanhtai05/task-manager/cmd/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
