package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "ToDoS - a todo list with a REST API and a terminal client",
	Long: `ToDoS manages tagged tasks. Run "todos serve" to start the HTTP API,
or "todos ui" to open the terminal client against a running server.`,
}

func Execute() error {
	return rootCmd.Execute()
}
