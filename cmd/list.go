package main

import (
	"fmt"
	"os"

	"github.com/fornellas/resonance/log"
	"github.com/spf13/cobra"

	"github.com/sysdrill/sysdrill/pkg/catalog"
)

var ListCmd = &cobra.Command{
	Use:   "list CATALOG",
	Short: "List catalog descriptors without invoking anything.",
	Args:  cobra.ExactArgs(1),
	Run: func(cobraCmd *cobra.Command, args []string) {
		logger := log.MustLogger(cobraCmd.Context())

		ctlg, err := catalog.Load(args[0])
		if err != nil {
			logger.Error("failed to load catalog", "err", err)
			os.Exit(1)
		}

		for _, name := range ctlg.Names() {
			fmt.Println(ctlg[name].Signature())
		}
	},
}

func init() {
	RootCmd.AddCommand(ListCmd)
}
