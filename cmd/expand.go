package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reelfinder/internal/synth"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Grow the catalog with synthetic movies and optionally save it",
	Run: func(cmd *cobra.Command, _ []string) {
		runExpand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().Int("min-total", synth.DefaultMinTotal, "minimum total movies after expansion")
	expandCmd.Flags().Int("start-year", synth.DefaultStartYear, "earliest year for synthetic movies")
	expandCmd.Flags().Int("end-year", synth.DefaultEndYear, "latest year for synthetic movies")
	expandCmd.Flags().Bool("save", false, "save the expanded catalog to the output file")
	expandCmd.Flags().StringP("output", "o", "movies_expanded.json", "output file for --save")
}

func runExpand(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	movies, err := loadCatalog(logger, config)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	opts := synth.Options{
		MinTotal:  mustInt(cmd, "min-total"),
		StartYear: mustInt(cmd, "start-year"),
		EndYear:   mustInt(cmd, "end-year"),
	}

	generated, err := synth.Expand(movies, opts)
	if err != nil {
		logger.Fatal("expanding the catalog", zap.Error(err))
	}

	logger.Info("catalog expanded",
		zap.Int("generated", generated),
		zap.Int("total", movies.Len()),
	)

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return
	}

	output := mustString(cmd, "output")
	if err := movies.SaveJSON(output); err != nil {
		logger.Fatal("saving the expanded catalog", zap.Error(err), zap.String("output", output))
	}

	logger.Info("catalog saved",
		zap.String("output", output),
		zap.Int("movies", movies.Len()),
	)
}
