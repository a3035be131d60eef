package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reelfinder/internal/filtering"
	"reelfinder/internal/fuzzy"
	"reelfinder/internal/render"
	"reelfinder/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the movie catalog by title, genre, category or year",
	Run: func(cmd *cobra.Command, _ []string) {
		runSearch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "search query (title, genre, category or a year)")
	searchCmd.Flags().Bool("fuzzy", false, "enable typo-tolerant fuzzy matching")
	searchCmd.Flags().Int("fuzzy-threshold", search.DefaultFuzzyThreshold, "minimum fuzzy similarity score (0-100)")
	searchCmd.Flags().Int("max-fuzzy-candidates", search.DefaultMaxFuzzyCandidates, "cap on records considered by the fuzzy pass")
	searchCmd.Flags().Int("max-results", search.DefaultMaxResults, "maximum number of results")
	searchCmd.Flags().String("sort-by", "", "sort results by: rating, box_office or year (default: relevance)")

	searchCmd.Flags().String("genre", "", "filter by genre (substring match)")
	searchCmd.Flags().String("category", "", "filter by category (substring match)")
	searchCmd.Flags().Float64("min-rating", 0, "filter by minimum rating")
	searchCmd.Flags().Int("year", 0, "filter by exact release year")
	searchCmd.Flags().Int("year-from", 0, "filter by release year, inclusive lower bound")
	searchCmd.Flags().Int("year-to", 0, "filter by release year, inclusive upper bound")

	viper.BindPFlag("fuzzy", searchCmd.Flags().Lookup("fuzzy"))
	viper.BindPFlag("fuzzy-threshold", searchCmd.Flags().Lookup("fuzzy-threshold"))
	viper.BindPFlag("max-results", searchCmd.Flags().Lookup("max-results"))
}

func runSearch(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format := viper.GetString("format")
	if err := render.ValidateFormat(format); err != nil {
		logger.Fatal("validating output format", zap.Error(err))
	}

	searchCfg := search.Config{
		Fuzzy:              viper.GetBool("fuzzy"),
		FuzzyThreshold:     viper.GetInt("fuzzy-threshold"),
		MaxFuzzyCandidates: mustInt(cmd, "max-fuzzy-candidates"),
		MaxResults:         viper.GetInt("max-results"),
		SortBy:             mustString(cmd, "sort-by"),
	}
	if err := searchCfg.Validate(); err != nil {
		logger.Fatal("validating search options", zap.Error(err))
	}

	movies, err := loadCatalog(logger, config)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	filters := prepareFilters(cmd)
	filtered, err := filtering.New(filters, logger).Run(movies)
	if err != nil {
		logger.Fatal("filtering the catalog", zap.Error(err))
	}

	query := search.Sanitize(mustString(cmd, "query"))

	// A bare filter invocation lists the filtered records without ranking.
	if query == "" {
		if len(filters) == 0 {
			logger.Fatal("a query or at least one filter flag is required",
				zap.String("hint", "pass --query or one of --genre/--category/--min-rating/--year/--year-from/--year-to"),
			)
		}
		listed := filtered.Sorted(searchCfg.SortBy)
		if searchCfg.MaxResults > 0 && len(listed) > searchCfg.MaxResults {
			listed = listed[:searchCfg.MaxResults]
		}
		if err := render.Movies(os.Stdout, "", listed, format); err != nil {
			logger.Fatal("rendering results", zap.Error(err))
		}
		return
	}

	logger.Info("starting the search",
		zap.String("query", query),
		zap.Bool("fuzzy", searchCfg.Fuzzy),
		zap.Int("candidates", filtered.Len()),
	)

	engine := search.NewEngine(fuzzy.Default(), logger)
	results, err := engine.Search(filtered, query, searchCfg)
	if err != nil {
		logger.Fatal("searching the catalog", zap.Error(err))
	}

	if len(results) == 0 && format == render.FormatText {
		if err := render.Movies(os.Stdout, "No matching results found. Current top-rated movies:", movies.TopRated(5), format); err != nil {
			logger.Fatal("rendering results", zap.Error(err))
		}
		return
	}

	if err := render.Results(os.Stdout, results, format); err != nil {
		logger.Fatal("rendering results", zap.Error(err))
	}
}

// prepareFilters builds the filter pipeline from the flags the user set.
func prepareFilters(cmd *cobra.Command) []filtering.Filter {
	var filters []filtering.Filter

	if v := mustString(cmd, "genre"); v != "" {
		filters = append(filters, filtering.NewGenre(v))
	}
	if v := mustString(cmd, "category"); v != "" {
		filters = append(filters, filtering.NewCategory(v))
	}
	if cmd.Flags().Changed("min-rating") {
		v, _ := cmd.Flags().GetFloat64("min-rating")
		filters = append(filters, filtering.NewMinRating(v))
	}
	if cmd.Flags().Changed("year") {
		filters = append(filters, filtering.NewYear(mustInt(cmd, "year")))
	}
	if cmd.Flags().Changed("year-from") {
		filters = append(filters, filtering.NewYearFrom(mustInt(cmd, "year-from")))
	}
	if cmd.Flags().Changed("year-to") {
		filters = append(filters, filtering.NewYearTo(mustInt(cmd, "year-to")))
	}

	return filters
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}
