package main

import (
	"Alkhabir/config/environment"
	"Alkhabir/models"
	"Alkhabir/services"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var askCmd = &cobra.Command{
	Use:   "ask <text>",
	Short: "Run one dispatch request and print the JSON envelope",
	Long: `Run one dispatch request against the completion API without starting
the server.

Examples:
  alkhabir ask "شخص اقتحم منزلاً ليلاً وسرق منه مجوهرات"
  alkhabir ask --type question "ما هي آجال الاستئناف في المادة المدنية؟"
  alkhabir ask --type ocr --image ./judgment.png "استخرج النص"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := environment.Load()
		if err != nil {
			return err
		}

		reqType, _ := cmd.Flags().GetString("type")
		imagePath, _ := cmd.Flags().GetString("image")

		req := &models.DispatchRequest{Type: models.RequestType(reqType), Query: strings.Join(args, " ")}
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return err
			}
			defer f.Close()
			if req.Image, err = services.ReadImage(f, 10<<20); err != nil {
				return err
			}
		}

		_, dispatcher, err := newDispatcher(cfg, zap.NewNop())
		if err != nil {
			return err
		}

		out := json.NewEncoder(cmd.OutOrStdout())
		out.SetEscapeHTML(false)
		out.SetIndent("", "  ")

		resp, err := dispatcher.Dispatch(cmd.Context(), req)
		if err != nil {
			var de *services.DispatchError
			if errors.As(err, &de) {
				out.Encode(de.Failure())
				return fmt.Errorf("dispatch failed with status %d", de.StatusCode)
			}
			return err
		}
		return out.Encode(resp)
	},
}

func init() {
	askCmd.Flags().StringP("type", "t", string(models.RequestAnalyze), "request type: analyze, question, suggest or ocr")
	askCmd.Flags().String("image", "", "image file attached to an ocr request")
}
