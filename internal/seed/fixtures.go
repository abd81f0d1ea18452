package seed

import "time"

// MovieFixture describes one seeded movie.  CategoryIndex and
// DirectorIndex point into the stored category and director lists (in id
// order); an index past the end of its list resolves to the first entry.
type MovieFixture struct {
	Name          string
	Description   string
	DurationMin   uint32
	ReleaseDate   time.Time
	IsDisplay     bool
	TrailerURL    string
	CategoryIndex int
	DirectorIndex int
}

// CommentFixture is a comment template.
type CommentFixture struct {
	Text       string
	AuthorID   string
	AuthorName string
}

// CatalogFixtures is the reference data inserted into an empty catalog.
type CatalogFixtures struct {
	Categories    []string
	Directors     []string
	Cities        []string
	Saloons       []string
	Movies        []MovieFixture
	ImageURLs     []string
	ActorSets     [][]string // ActorSets[i] is the cast of the i-th stored movie
	Comments      []CommentFixture
	ShowtimeSlots []string
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultCatalogFixtures returns the data set the platform ships with.
func DefaultCatalogFixtures() CatalogFixtures {
	return CatalogFixtures{
		Categories: []string{
			"Action", "Drama", "Comedy", "Horror", "Sci-Fi",
			"Romance", "Thriller", "Adventure", "Animation", "Documentary",
		},
		Directors: []string{
			"Christopher Nolan", "Steven Spielberg", "Quentin Tarantino",
			"Martin Scorsese", "James Cameron", "Alfred Hitchcock",
			"Francis Ford Coppola", "Ridley Scott", "Tim Burton", "David Fincher",
		},
		Cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
			"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
			"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
		},
		Saloons: []string{
			"Hall A", "Hall B", "Hall C", "IMAX Theater", "Premium Hall",
			"VIP Theater", "3D Theater", "Standard Hall 1", "Standard Hall 2", "Standard Hall 3",
		},
		Movies: []MovieFixture{
			{
				Name:          "Inception",
				Description:   "A skilled thief is given a chance at redemption if he can successfully perform an inception.",
				DurationMin:   148,
				ReleaseDate:   date("2010-07-16"),
				IsDisplay:     true,
				TrailerURL:    "https://www.youtube.com/watch?v=YoHD9XEInc0",
				CategoryIndex: 0, // Action
				DirectorIndex: 0, // Christopher Nolan
			},
			{
				Name:          "The Dark Knight",
				Description:   "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
				DurationMin:   152,
				ReleaseDate:   date("2008-07-18"),
				IsDisplay:     true,
				TrailerURL:    "https://www.youtube.com/watch?v=EXeTwQWrcwY",
				CategoryIndex: 0,
				DirectorIndex: 0,
			},
			{
				Name:          "Pulp Fiction",
				Description:   "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
				DurationMin:   154,
				ReleaseDate:   date("1994-10-14"),
				IsDisplay:     true,
				TrailerURL:    "https://www.youtube.com/watch?v=s7EdQ4FqbhY",
				CategoryIndex: 1, // Drama
				DirectorIndex: 2, // Quentin Tarantino
			},
			{
				Name:          "Avatar",
				Description:   "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world he feels is his home.",
				DurationMin:   162,
				ReleaseDate:   date("2009-12-18"),
				IsDisplay:     false, // coming soon
				TrailerURL:    "https://www.youtube.com/watch?v=5PSNL1qE6VY",
				CategoryIndex: 4, // Sci-Fi
				DirectorIndex: 4, // James Cameron
			},
			{
				Name:          "Goodfellas",
				Description:   "The story of Henry Hill and his life in the mob, covering his relationship with his wife Karen Hill and his mob partners.",
				DurationMin:   146,
				ReleaseDate:   date("1990-09-21"),
				IsDisplay:     true,
				TrailerURL:    "https://www.youtube.com/watch?v=qo5jJpHtI40",
				CategoryIndex: 1, // Drama
				DirectorIndex: 3, // Martin Scorsese
			},
		},
		ImageURLs: []string{
			"https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFjM2ItYzViMjE3YzI5MjljXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BZDA0OGQxNTItMDZkMC00N2UyLTg3MzMtYTJmNjg3Nzk5MzRiXkEyXkFqcGdeQXVyMjUzOTY1NTc@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BYTViNzMxZjEtZGEwNy00MDNiLWIzNGQtZDY2MjQ1OWViZjFmXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkYzNjNTc4L2ltYWdlXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJmNWYtYzZlODY3ZTk3OTFlXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkYzNjNTc4L2ltYWdlXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BNzVkYzIwMzItYjU0OC00MWI3LWI1YjctMzc0NDkwMDkxNTdiXkEyXkFqcGdeQXVyNTIzOTk5ODM@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJmNWYtYzZlODY3ZTk3OTFlXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BNWIwODRlZTUtY2U3ZS00Yzg1LWJhNzYtMmZiYmEyNmU1NjMzXkEyXkFqcGdeQXVyMTQxNzMzNDI@._V1_SX300.jpg",
			"https://m.media-amazon.com/images/M/MV5BMWU4N2FjNzYtNTVkNC00NzQ0LTg0MjAtYTJlMjFhNGUxZDFmXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_SX300.jpg",
		},
		ActorSets: [][]string{
			{"Leonardo DiCaprio", "Marion Cotillard", "Tom Hardy", "Ellen Page", "Ken Watanabe"},
			{"Christian Bale", "Heath Ledger", "Aaron Eckhart", "Maggie Gyllenhaal", "Gary Oldman"},
			{"John Travolta", "Samuel L. Jackson", "Uma Thurman", "Bruce Willis", "Ving Rhames"},
			{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver", "Stephen Lang", "Michelle Rodriguez"},
			{"Robert De Niro", "Ray Liotta", "Joe Pesci", "Lorraine Bracco", "Paul Sorvino"},
		},
		Comments: []CommentFixture{
			{"Amazing movie! Christopher Nolan at his best.", "john.doe@example.com", "John Doe"},
			{"Mind-bending plot and excellent cinematography.", "jane.smith@example.com", "Jane Smith"},
			{"Heath Ledger's performance as Joker is legendary.", "movie.lover@example.com", "Movie Lover"},
			{"One of the best superhero movies ever made.", "batman.fan@example.com", "Batman Fan"},
			{"Tarantino's masterpiece with incredible dialogue.", "film.critic@example.com", "Film Critic"},
			{"Visual effects are groundbreaking.", "scifi.fan@example.com", "SciFi Fan"},
			{"Classic gangster movie with great acting.", "classic.movies@example.com", "Classic Fan"},
		},
		ShowtimeSlots: []string{"10:00", "13:30", "16:45", "20:00", "22:30"},
	}
}
