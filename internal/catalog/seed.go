package catalog

// Seed returns the built-in starter catalog, used when no dataset files are
// provided.
func Seed() *Movies {
	seed := []*Movie{
		{Name: "Superman", Year: 1978, Category: "Blockbuster", Genre: "Action", BoxOfficeMillions: 134.2, Rating: 7.9},
		{Name: "The Avengers", Year: 2012, Category: "Blockbuster", Genre: "Action", BoxOfficeMillions: 1518.8, Rating: 8.4},
		{Name: "Man From Toronto", Year: 2022, Category: "Streaming", Genre: "Action/Comedy", BoxOfficeMillions: 12.3, Rating: 6.1},
		{Name: "Black Widow", Year: 2021, Category: "Blockbuster", Genre: "Action", BoxOfficeMillions: 379.8, Rating: 6.8},
		{Name: "Shazam!", Year: 2019, Category: "Blockbuster", Genre: "Family/Fantasy", BoxOfficeMillions: 364.6, Rating: 7.1},
		{Name: "John Wick", Year: 2014, Category: "Action Franchise", Genre: "Action/Thriller", BoxOfficeMillions: 86.0, Rating: 7.4},
		{Name: "Spider-Man: No Way Home", Year: 2021, Category: "Blockbuster", Genre: "Action/Adventure", BoxOfficeMillions: 1932.0, Rating: 8.1},
		{Name: "Inception", Year: 2010, Category: "Prestige", Genre: "Sci-Fi", BoxOfficeMillions: 829.9, Rating: 8.8},
		{Name: "The Godfather", Year: 1972, Category: "Classic", Genre: "Crime/Drama", BoxOfficeMillions: 246.1, Rating: 9.2},
		{Name: "Parasite", Year: 2019, Category: "Indie", Genre: "Thriller/Drama", BoxOfficeMillions: 258.8, Rating: 8.6},
		{Name: "La La Land", Year: 2016, Category: "Musical", Genre: "Musical/Romance", BoxOfficeMillions: 446.1, Rating: 8.0},
		{Name: "Toy Story", Year: 1995, Category: "Animation", Genre: "Family/Animation", BoxOfficeMillions: 373.6, Rating: 8.3},
		{Name: "The Dark Knight", Year: 2008, Category: "Prestige", Genre: "Action/Crime", BoxOfficeMillions: 1004.9, Rating: 9.0},
		{Name: "Forrest Gump", Year: 1994, Category: "Classic", Genre: "Drama/Romance", BoxOfficeMillions: 678.2, Rating: 8.8},
		{Name: "The Shawshank Redemption", Year: 1994, Category: "Classic", Genre: "Drama", BoxOfficeMillions: 58.3, Rating: 9.3},
		{Name: "Interstellar", Year: 2014, Category: "Prestige", Genre: "Sci-Fi/Drama", BoxOfficeMillions: 677.5, Rating: 8.6},
		{Name: "Get Out", Year: 2017, Category: "Indie", Genre: "Horror/Thriller", BoxOfficeMillions: 255.4, Rating: 7.7},
		{Name: "The Matrix", Year: 1999, Category: "Sci-Fi", Genre: "Action/Sci-Fi", BoxOfficeMillions: 463.5, Rating: 8.7},
		{Name: "Titanic", Year: 1997, Category: "Romance/Blockbuster", Genre: "Romance/Drama", BoxOfficeMillions: 2187.5, Rating: 7.8},
		{Name: "Spirited Away", Year: 2001, Category: "Animation", Genre: "Fantasy/Animation", BoxOfficeMillions: 355.5, Rating: 8.6},
		{Name: "The Social Network", Year: 2010, Category: "Drama", Genre: "Drama/Biography", BoxOfficeMillions: 224.9, Rating: 7.7},
		{Name: "Mad Max: Fury Road", Year: 2015, Category: "Action", Genre: "Action/Adventure", BoxOfficeMillions: 378.9, Rating: 8.1},
		{Name: "City of God", Year: 2002, Category: "Indie", Genre: "Crime/Drama", BoxOfficeMillions: 30.6, Rating: 8.6},
		{Name: "Coco", Year: 2017, Category: "Animation", Genre: "Family/Animation", BoxOfficeMillions: 807.1, Rating: 8.4},
	}

	for _, m := range seed {
		m.ID = newID()
	}

	return &Movies{Items: seed}
}
