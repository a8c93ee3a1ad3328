package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfbb/qrmatrix/internal/qrcode"
)

func init() {
	planCmd.Flags().StringVar(&flagEC, "ec", "", "error-correction level: low, medium, quartile, high (default from config)")
	planCmd.Flags().BoolVar(&flagMicro, "micro", false, "plan as Micro QR Code instead of QR Code")
	planCmd.Flags().IntVar(&flagMinVersion, "min-version", 0, "minimum symbol version to consider")
	planCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrmatrix/config.yaml)")
}

var planCmd = &cobra.Command{
	Use:   "plan <text>",
	Short: "Report the symbol version, form and dimension text would plan to, without encoding it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	level, form, err := resolveLevelAndForm(cfg, flagEC, flagMicro)
	if err != nil {
		return err
	}

	segments, err := segmentsForText(args[0], level, form, qrcode.DefaultECI)
	if err != nil {
		return fmt.Errorf("segmenting text: %w", err)
	}

	extra, err := buildExtraMode(form)
	if err != nil {
		return err
	}

	info, ok := qrcode.PlanVersion(segments, level, extra, flagMinVersion, false)
	if !ok {
		return fmt.Errorf("no version fits this payload at the requested error-correction level")
	}

	formName := "QR"
	if info.Form == qrcode.FormMicroQR {
		formName = "Micro QR"
	}
	fmt.Printf("form:      %s\n", formName)
	fmt.Printf("version:   %d\n", info.Version)
	fmt.Printf("dimension: %d x %d modules\n", qrcode.DimensionForVersion(info.Form, info.Version), qrcode.DimensionForVersion(info.Form, info.Version))
	fmt.Printf("ec level:  %s\n", ecLevelName(level))
	fmt.Printf("data codewords:   %d\n", info.TotalDataCodewords)
	fmt.Printf("ec codewords:     %d\n", info.TotalECCodewords())
	fmt.Printf("blocks:           %d\n", info.TotalBlocks())
	return nil
}
