package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfbb/qrmatrix/internal/config"
	"github.com/dfbb/qrmatrix/internal/qrcode"
	"github.com/dfbb/qrmatrix/internal/render"
)

var (
	flagEC            string
	flagMicro         bool
	flagMask          int
	flagMinVersion    int
	flagFnc1First     bool
	flagFnc1SecondApp string
	flagECI           uint32
	flagRenderStyle   string
)

func init() {
	encodeCmd.Flags().StringVar(&flagEC, "ec", "", "error-correction level: low, medium, quartile, high (default from config)")
	encodeCmd.Flags().BoolVar(&flagMicro, "micro", false, "encode as Micro QR Code instead of QR Code")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force a specific mask pattern instead of choosing the best one")
	encodeCmd.Flags().IntVar(&flagMinVersion, "min-version", 0, "minimum symbol version to consider")
	encodeCmd.Flags().BoolVar(&flagFnc1First, "fnc1-first", false, "set the FNC1 First Position indicator")
	encodeCmd.Flags().StringVar(&flagFnc1SecondApp, "fnc1-second-app", "", "set the FNC1 Second Position indicator with this AIM application identifier")
	encodeCmd.Flags().Uint32Var(&flagECI, "eci", 3, "ECI designator for the encoded segment (3 = no ECI header)")
	encodeCmd.Flags().StringVar(&flagRenderStyle, "style", "", "render style: halfblock, text, png (default from config)")
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrmatrix/config.yaml)")
}

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Segment, plan and encode text into a QR Code or Micro QR Code",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel)

	level, form, err := resolveLevelAndForm(cfg, flagEC, flagMicro)
	if err != nil {
		return err
	}

	segments, err := segmentsForText(args[0], level, form, flagECI)
	if err != nil {
		slog.Error("segmentation failed", "err", err)
		return fmt.Errorf("segmenting text: %w", err)
	}

	extra, err := buildExtraMode(form)
	if err != nil {
		return err
	}

	req := qrcode.EncodeRequest{
		Segments:   segments,
		ECLevel:    level,
		Extra:      extra,
		MinVersion: flagMinVersion,
	}
	if flagMask >= 0 {
		req.ForceMask = true
		req.ForcedMask = flagMask
	}

	board, err := qrcode.Encode(req)
	if err != nil {
		slog.Error("encode failed", "err", err)
		return fmt.Errorf("encoding: %w", err)
	}

	return writeBoard(board, cfg, flagRenderStyle)
}

func resolveLevelAndForm(cfg *config.Config, ecFlag string, microFlag bool) (qrcode.ECLevel, qrcode.Form, error) {
	ecStr := cfg.Encode.ECLevel
	if ecFlag != "" {
		ecStr = ecFlag
	}
	level, err := parseECLevel(ecStr)
	if err != nil {
		return 0, 0, err
	}

	form := qrcode.FormQR
	if microFlag || cfg.Encode.Form == "micro" {
		form = qrcode.FormMicroQR
	}
	return level, form, nil
}

func buildExtraMode(form qrcode.Form) (qrcode.ExtraMode, error) {
	if form == qrcode.FormMicroQR {
		return qrcode.ExtraMode{Kind: qrcode.ExtraModeMicroQR}, nil
	}
	switch {
	case flagFnc1First:
		return qrcode.ExtraMode{Kind: qrcode.ExtraModeFnc1First}, nil
	case flagFnc1SecondApp != "":
		return qrcode.ExtraMode{Kind: qrcode.ExtraModeFnc1Second, AppID: flagFnc1SecondApp}, nil
	default:
		return qrcode.ExtraMode{}, nil
	}
}

func writeBoard(board qrcode.Board, cfg *config.Config, styleFlag string) error {
	style := cfg.Render.Style
	if styleFlag != "" {
		style = styleFlag
	}
	switch style {
	case "text":
		render.Text(os.Stdout, board)
	case "png":
		return render.PNG(os.Stdout, board, cfg.Render.Scale)
	default:
		render.HalfBlock(os.Stdout, board)
	}
	return nil
}
