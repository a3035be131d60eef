package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reelfinder/internal/catalog"
	"reelfinder/internal/logger"
)

const (
	app = "reelfinder"
)

// Config mirrors the optional reelfinder.yaml file. Every key can also be
// set through flags.
type Config struct {
	Load           []string `mapstructure:"load"`
	FavoritesFile  string   `mapstructure:"favorites-file"`
	Fuzzy          bool     `mapstructure:"fuzzy"`
	FuzzyThreshold int      `mapstructure:"fuzzy-threshold"`
	MaxResults     int      `mapstructure:"max-results"`
	Format         string   `mapstructure:"format"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "reelfinder is a simple cli for searching a movie catalog with tokenized and fuzzy matching",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is reelfinder.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringSlice("load", nil, "dataset files (.json or .csv) merged into the built-in catalog")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("load", rootCmd.PersistentFlags().Lookup("load"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, but one that exists and fails to
		// parse is not ignorable.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// loadCatalog builds the working catalog: the built-in seed plus any
// datasets named by --load or the config file.
func loadCatalog(log *zap.Logger, config *Config) (*catalog.Movies, error) {
	movies := catalog.Seed()

	if len(config.Load) == 0 {
		return movies, nil
	}

	loaded, err := catalog.Load(log, config.Load...)
	if err != nil {
		return nil, err
	}

	added := movies.Merge(loaded, log)
	log.Info("catalog ready",
		zap.Int("loaded", added),
		zap.Int("total", movies.Len()),
	)

	return movies, nil
}
