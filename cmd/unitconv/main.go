package main

import (
	"os"

	"github.com/harrison/unitconv/internal/cmd"
	"github.com/harrison/unitconv/internal/display"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		display.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
