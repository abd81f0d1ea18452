package model

import "time"

// Category groups movies by genre.  Rows live in the `categories`
// table of the catalog database.
type Category struct {
    ID   uint64 // categories.id
    Name string // categories.name
}

// Director is the person credited with directing a movie.
type Director struct {
    ID   uint64 // directors.id
    Name string // directors.name
}

// Movie is a catalog entry.  IsDisplay separates movies that are
// currently showing (true) from the "coming soon" list (false); only
// displayed movies receive showtimes.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – movie title.
//  Description – short synopsis.
//  DurationMin – running time in minutes.
//  ReleaseDate – release date (time of day is ignored).
//  IsDisplay   – currently showing flag.
//  TrailerURL  – link to the trailer.
//  CategoryID  – category of the movie.
//  DirectorID  – director of the movie.
type Movie struct {
    ID          uint64    // movies.id
    Name        string    // movies.name
    Description string    // movies.description
    DurationMin uint32    // movies.duration_min
    ReleaseDate time.Time // movies.release_date
    IsDisplay   bool      // movies.is_display
    TrailerURL  string    // movies.trailer_url
    CategoryID  uint64    // movies.category_id
    DirectorID  uint64    // movies.director_id
}

// City is a city in which a movie is screened.  A city row belongs to a
// single movie, so the same city name appears once per movie.
type City struct {
    ID      uint64 // cities.id
    Name    string // cities.name
    MovieID uint64 // cities.movie_id
}

// Saloon is a screening hall inside a city.
type Saloon struct {
    ID     uint64 // saloons.id
    Name   string // saloons.name
    CityID uint64 // saloons.city_id
}

// MovieImage is a poster or still attached to a movie.
type MovieImage struct {
    ID       uint64 // movie_images.id
    ImageURL string // movie_images.image_url
    MovieID  uint64 // movie_images.movie_id
}

// Actor is a cast member of a movie.
type Actor struct {
    ID      uint64 // actors.id
    Name    string // actors.name
    MovieID uint64 // actors.movie_id
}

// Comment is a user review of a movie.  AuthorID holds the author's
// email address; AuthorName is the display name shown next to the text.
type Comment struct {
    ID         uint64 // comments.id
    Text       string // comments.text
    AuthorName string // comments.author_name
    AuthorID   string // comments.author_id
    MovieID    uint64 // comments.movie_id
}

// MovieSaloonTime is a showtime: a movie playing in a saloon at a given
// begin time.  BeginTime is a wall clock string in "HH:MM" form.
type MovieSaloonTime struct {
    ID        uint64 // movie_saloon_times.id
    BeginTime string // movie_saloon_times.begin_time
    MovieID   uint64 // movie_saloon_times.movie_id
    SaloonID  uint64 // movie_saloon_times.saloon_id
}
