package main

import (
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <text>",
	Short: "Quickly preview arbitrary text as a terminal QR Code, without going through the core encoder",
	Args:  cobra.ExactArgs(1),
	Run:   runPreview,
}

func runPreview(cmd *cobra.Command, args []string) {
	config := qrterminal.Config{
		Level:     qrterminal.M,
		Writer:    os.Stdout,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 2,
	}
	qrterminal.GenerateWithConfig(args[0], config)
}
