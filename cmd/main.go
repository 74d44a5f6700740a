package main

import (
	"context"
	"os"

	"github.com/spf13/viper"
)

func main() {
	viper.SetEnvPrefix("SYSDRILL")
	viper.AutomaticEnv()

	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
