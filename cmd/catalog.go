package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reelfinder/internal/catalog"
	"reelfinder/internal/render"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres present in the catalog",
	Run: func(_ *cobra.Command, _ []string) {
		listTokens("Genre", (*catalog.Movies).Genres)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories present in the catalog",
	Run: func(_ *cobra.Command, _ []string) {
		listTokens("Category", (*catalog.Movies).Categories)
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top rated movies",
	Run: func(cmd *cobra.Command, _ []string) {
		runTop(cmd)
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(topCmd)

	topCmd.Flags().IntP("count", "n", 10, "number of movies to show")
}

func listTokens(header string, tokens func(*catalog.Movies) []catalog.TokenCount) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format := viper.GetString("format")
	if err := render.ValidateFormat(format); err != nil {
		logger.Fatal("validating output format", zap.Error(err))
	}

	movies, err := loadCatalog(logger, config)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	if err := render.Tokens(os.Stdout, header, tokens(movies), format); err != nil {
		logger.Fatal("rendering output", zap.Error(err))
	}
}

func runTop(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format := viper.GetString("format")
	if err := render.ValidateFormat(format); err != nil {
		logger.Fatal("validating output format", zap.Error(err))
	}

	movies, err := loadCatalog(logger, config)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	n := mustInt(cmd, "count")
	if err := render.Movies(os.Stdout, "", movies.TopRated(n), format); err != nil {
		logger.Fatal("rendering output", zap.Error(err))
	}
}
