package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/connector/cmd/connector"
)

func main() {
	rootCmd := connector.BuildConnectorCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
