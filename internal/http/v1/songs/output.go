package songs

// SongSubmitOutput for POST /songs (201 Created)
type SongSubmitOutput struct {
	Location string `header:"Location" doc:"URL of the created request"`
	Body     Song
}

// ListData models the paginated song list payload.
type ListData struct {
	Songs []Song `json:"songs" doc:"Page of song requests, newest first"`
	Total int    `json:"total" doc:"Total number of requests"           example:"3"`
}

// SongsListOutput for GET /songs
type SongsListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// SummaryData models the dashboard aggregates.
type SummaryData struct {
	Total         int    `json:"total"         doc:"Total requests"               example:"3"`
	Completed     int    `json:"completed"     doc:"Completed requests"           example:"1"`
	Pending       int    `json:"pending"       doc:"Pending requests"             example:"2"`
	FavoriteGenre string `json:"favoriteGenre" doc:"Most frequent genre, or None" example:"Pop"`
}

// SongsSummaryOutput for GET /songs/summary
type SongsSummaryOutput struct {
	Body SummaryData
}

// SongReceivedOutput for POST /songs/{id}/received
type SongReceivedOutput struct {
	Body Song
}

// GenresData models the fixed genre list.
type GenresData struct {
	Genres []string `json:"genres" doc:"Genres a request must choose from"`
}

// GenresOutput for GET /genres
type GenresOutput struct {
	Body GenresData
}
