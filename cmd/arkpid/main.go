package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "arkpid",
		Short: "ARK persistent identifier resolver and NOID minter",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	root.AddCommand(
		buildServeCommand(),
		buildNoidCheckCommand(),
		buildNoidGenerateCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
