package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mzoric/holidays-eval/internal/eval"
	"github.com/mzoric/holidays-eval/internal/eval/dataset"
	"github.com/mzoric/holidays-eval/internal/router"
	"github.com/mzoric/holidays-eval/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP evaluation service",
	Long: `Starts an HTTP service that loads the ground truth once and scores
results files POSTed to /api/v1/evaluate. Configured via MAPEVAL_*
environment variables (MAPEVAL_GROUND_TRUTH is required).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}

		gt, err := dataset.LoadGroundTruthFile(cfg.GroundTruth, dataset.Config{
			Extension:    cfg.Extension,
			QueryModulus: cfg.QueryModulus,
		})
		if err != nil {
			return err
		}
		slog.Info("Ground truth loaded",
			"path", cfg.GroundTruth,
			"images", len(gt.AllNames),
			"queries", len(gt.Queries),
		)

		s := server.NewServer(cfg)

		evaluator := eval.New(gt, eval.DefaultConfig())
		r := router.NewEvalRouter(s.Echo, evaluator, eval.DefaultKValues, cfg.MaxBodyBytes)
		r.Bind()

		slog.Info("Starting evaluation service", "port", cfg.Port)
		return s.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
