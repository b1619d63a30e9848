package songrequest

import (
	"testing"
	"time"
)

func reqWith(genre string, status Status) *SongRequest {
	return &SongRequest{
		ID:        "req-" + genre,
		UserID:    "user-1",
		Genre:     genre,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	if s.Total != 0 {
		t.Errorf("expected total 0, got %d", s.Total)
	}
	if s.Completed != 0 || s.Pending != 0 {
		t.Errorf("expected zero counts, got completed=%d pending=%d", s.Completed, s.Pending)
	}
	if s.FavoriteGenre != NoFavoriteGenre {
		t.Errorf("expected favorite genre %q, got %q", NoFavoriteGenre, s.FavoriteGenre)
	}
}

func TestSummarizeFavoriteGenre(t *testing.T) {
	s := Summarize([]*SongRequest{
		reqWith("Pop", StatusPending),
		reqWith("Pop", StatusPending),
		reqWith("Rock", StatusCompleted),
	})

	if s.Total != 3 {
		t.Errorf("expected total 3, got %d", s.Total)
	}
	if s.Completed != 1 {
		t.Errorf("expected completed 1, got %d", s.Completed)
	}
	if s.Pending != 2 {
		t.Errorf("expected pending 2, got %d", s.Pending)
	}
	if s.FavoriteGenre != "Pop" {
		t.Errorf("expected favorite genre Pop, got %q", s.FavoriteGenre)
	}
}

func TestSummarizeFavoriteGenreTie(t *testing.T) {
	// On a tie the genre that reached the winning count first wins.
	s := Summarize([]*SongRequest{
		reqWith("Jazz", StatusPending),
		reqWith("Folk", StatusPending),
	})

	if s.FavoriteGenre != "Jazz" {
		t.Errorf("expected first-encountered genre Jazz on tie, got %q", s.FavoriteGenre)
	}
}

func TestSummarizeCountsAllStatuses(t *testing.T) {
	s := Summarize([]*SongRequest{
		reqWith("Pop", StatusCompleted),
		reqWith("Pop", StatusCompleted),
		reqWith("Rock", StatusPending),
	})

	if s.Completed != 2 {
		t.Errorf("expected completed 2, got %d", s.Completed)
	}
	if s.Pending != 1 {
		t.Errorf("expected pending 1, got %d", s.Pending)
	}
}

func TestValidGenre(t *testing.T) {
	for _, g := range Genres {
		if !ValidGenre(g) {
			t.Errorf("expected %q to be valid", g)
		}
	}
	if ValidGenre("Polka") {
		t.Error("expected Polka to be invalid")
	}
	if ValidGenre("") {
		t.Error("expected empty genre to be invalid")
	}
}
