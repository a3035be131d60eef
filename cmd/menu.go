package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	sfuzzy "github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reelfinder/internal/catalog"
	"reelfinder/internal/favorites"
	"reelfinder/internal/fuzzy"
	"reelfinder/internal/render"
	"reelfinder/internal/search"
)

const (
	MenuSearch         = "Search for a movie"
	MenuFavorites      = "Show my favorites"
	MenuRemoveFavorite = "Remove a movie from favorites"
	MenuGenres         = "List genres"
	MenuCategories     = "List categories"
	MenuTop            = "Show top rated movies"
	MenuQuit           = "Quit"

	PromptYes  = "Yes"
	PromptNo   = "No"
	PromptBack = "back"
)

var errExit = errors.New("exit requested")

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu for searching and favorites",
	Run: func(cmd *cobra.Command, _ []string) {
		runMenu(cmd)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().StringP("favorites-file", "F", favorites.DefaultFile, "file the favorites list is persisted to")

	viper.BindPFlag("favorites-file", menuCmd.Flags().Lookup("favorites-file"))
}

func runMenu(_ *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	movies, err := loadCatalog(logger, config)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	store := favorites.NewStore(viper.GetString("favorites-file"), logger)
	if err := store.Load(); err != nil {
		logger.Fatal("loading favorites", zap.Error(err))
	}

	engine := search.NewEngine(fuzzy.Default(), logger)

	menu := promptui.Select{
		Label: "Menu",
		Items: []string{MenuSearch, MenuFavorites, MenuRemoveFavorite, MenuGenres, MenuCategories, MenuTop, MenuQuit},
		Size:  7,
	}

	for {
		_, action, err := menu.Run()
		if err != nil {
			// Interrupt or EOF both mean the user is done.
			return
		}

		if err := handleMenuAction(action, engine, movies, store, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Error("menu action failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func handleMenuAction(action string, engine *search.Engine, movies *catalog.Movies, store *favorites.Store, logger *zap.Logger) error {
	switch action {
	case MenuSearch:
		return menuSearch(engine, movies, store)
	case MenuFavorites:
		favs := store.Movies(movies)
		if len(favs) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		return render.Movies(os.Stdout, "Your favorites:", favs, render.FormatText)
	case MenuRemoveFavorite:
		return menuRemoveFavorite(store)
	case MenuGenres:
		return render.Tokens(os.Stdout, "Genre", movies.Genres(), render.FormatText)
	case MenuCategories:
		return render.Tokens(os.Stdout, "Category", movies.Categories(), render.FormatText)
	case MenuTop:
		return render.Movies(os.Stdout, "Top rated movies:", movies.TopRated(10), render.FormatText)
	case MenuQuit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// menuSearch runs one interactive search and offers to favorite the picked
// result. Fuzzy matching is always on here; typos are the point of an
// interactive prompt.
func menuSearch(engine *search.Engine, movies *catalog.Movies, store *favorites.Store) error {
	prompt := promptui.Prompt{Label: "Movie name or part of it"}
	query, err := prompt.Run()
	if err != nil {
		return nil
	}

	query = search.Sanitize(query)
	if query == "" {
		return nil
	}

	results, err := engine.Search(movies, query, search.Config{
		Fuzzy:              true,
		FuzzyThreshold:     search.DefaultFuzzyThreshold,
		MaxFuzzyCandidates: search.DefaultMaxFuzzyCandidates,
		MaxResults:         10,
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	items := make([]string, 0, len(results)+1)
	for _, r := range results {
		items = append(items, render.FormatMovie(r.Movie))
	}
	items = append(items, PromptBack)

	picker := promptui.Select{
		Label:             "Matches (type to narrow)",
		Items:             items,
		Size:              10,
		StartInSearchMode: true,
		Searcher: func(input string, index int) bool {
			return len(sfuzzy.Find(input, []string{items[index]})) > 0
		},
	}

	idx, picked, err := picker.Run()
	if err != nil || picked == PromptBack {
		return nil
	}

	movie := results[idx].Movie
	confirm := promptui.Select{
		Label: fmt.Sprintf("Add %q (%d) to favorites?", movie.Name, movie.Year),
		Items: []string{PromptYes, PromptNo},
	}
	_, answer, err := confirm.Run()
	if err != nil || answer != PromptYes {
		return nil
	}

	switch err := store.Add(movies, movie.Name, movie.Year); {
	case errors.Is(err, favorites.ErrAlreadyFavorite):
		fmt.Println("Already in favorites.")
	case err != nil:
		return err
	default:
		fmt.Println("Added to favorites.")
	}
	return nil
}

func menuRemoveFavorite(store *favorites.Store) error {
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("No favorites to remove.")
		return nil
	}

	items := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		items = append(items, fmt.Sprintf("%s (%d)", e.Name, e.Year))
	}
	items = append(items, PromptBack)

	picker := promptui.Select{
		Label: "Choose a favorite to remove",
		Items: items,
		Size:  10,
		Searcher: func(input string, index int) bool {
			return len(sfuzzy.Find(input, []string{items[index]})) > 0
		},
	}

	idx, picked, err := picker.Run()
	if err != nil || picked == PromptBack {
		return nil
	}

	if err := store.Remove(entries[idx].Name, entries[idx].Year); err != nil {
		return err
	}
	fmt.Println("Removed from favorites.")
	return nil
}
