package songrequest

// NoFavoriteGenre is reported when the user has no requests yet.
const NoFavoriteGenre = "None"

// Summary holds derived aggregates over a user's song requests.
type Summary struct {
	Total         int
	Completed     int
	Pending       int
	FavoriteGenre string
}

// Summarize derives aggregate counts from a request list. The favorite
// genre is the most frequent one; on a tie the genre that reached the
// winning count first (in list order) wins, which keeps the result
// deterministic for a stable input order.
func Summarize(requests []*SongRequest) Summary {
	s := Summary{
		Total:         len(requests),
		FavoriteGenre: NoFavoriteGenre,
	}

	counts := make(map[string]int)
	best := 0
	for _, r := range requests {
		switch r.Status {
		case StatusCompleted:
			s.Completed++
		default:
			s.Pending++
		}

		counts[r.Genre]++
		if counts[r.Genre] > best {
			best = counts[r.Genre]
			s.FavoriteGenre = r.Genre
		}
	}
	return s
}
