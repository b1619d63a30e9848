package pagination

import (
	"net/url"
	"strings"
	"testing"
)

type item struct{ ID string }

func testItems(n int) []item {
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, item{ID: "item-" + string(rune('a'+i))})
	}
	return items
}

func getID(i item) string { return i.ID }

func TestPaginateFirstPage(t *testing.T) {
	items := testItems(5)

	result := Paginate(items, Cursor{}, 2, "test", getID, "/items", nil)

	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-a" || result.Items[1].ID != "item-b" {
		t.Errorf("unexpected page: %+v", result.Items)
	}
	if result.Total != 5 {
		t.Errorf("expected total 5, got %d", result.Total)
	}
	if result.NextCursor == "" {
		t.Error("expected a next cursor")
	}
	if result.PrevCursor != "" {
		t.Error("expected no prev cursor on the first page")
	}
}

func TestPaginateSecondPage(t *testing.T) {
	items := testItems(5)

	first := Paginate(items, Cursor{}, 2, "test", getID, "/items", nil)
	next, err := DecodeCursor(first.NextCursor)
	if err != nil {
		t.Fatalf("decode next cursor: %v", err)
	}

	second := Paginate(items, next, 2, "test", getID, "/items", nil)

	if len(second.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(second.Items))
	}
	if second.Items[0].ID != "item-c" || second.Items[1].ID != "item-d" {
		t.Errorf("unexpected page: %+v", second.Items)
	}
	if second.PrevCursor == "" {
		t.Error("expected a prev cursor on the second page")
	}
}

func TestPaginateLastPage(t *testing.T) {
	items := testItems(5)

	first := Paginate(items, Cursor{}, 4, "test", getID, "/items", nil)
	next, err := DecodeCursor(first.NextCursor)
	if err != nil {
		t.Fatalf("decode next cursor: %v", err)
	}

	last := Paginate(items, next, 4, "test", getID, "/items", nil)

	if len(last.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(last.Items))
	}
	if last.NextCursor != "" {
		t.Error("expected no next cursor on the last page")
	}
}

func TestPaginateEmpty(t *testing.T) {
	result := Paginate(nil, Cursor{}, 10, "test", getID, "/items", nil)

	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if result.Total != 0 {
		t.Errorf("expected total 0, got %d", result.Total)
	}
	if result.NextCursor != "" || result.PrevCursor != "" {
		t.Error("expected no cursors for an empty slice")
	}
	if result.LinkHeader != "" {
		t.Errorf("expected empty Link header, got %q", result.LinkHeader)
	}
}

func TestPaginateUnknownCursorValue(t *testing.T) {
	items := testItems(3)

	// A cursor pointing at a deleted item restarts from the beginning.
	result := Paginate(items, Cursor{Type: "test", Value: "gone"}, 2, "test", getID, "/items", nil)

	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-a" {
		t.Errorf("expected restart from the first item, got %s", result.Items[0].ID)
	}
}

func TestPaginateLinkHeader(t *testing.T) {
	items := testItems(5)

	result := Paginate(items, Cursor{}, 2, "test", getID, "/items", url.Values{"q": {"x"}})

	if !strings.Contains(result.LinkHeader, `rel="next"`) {
		t.Errorf("expected next link, got %q", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "/items?") {
		t.Errorf("expected base URL in link, got %q", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "q=x") {
		t.Errorf("expected query params preserved, got %q", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "limit=2") {
		t.Errorf("expected limit preserved, got %q", result.LinkHeader)
	}
}

func TestBuildLinkHeader(t *testing.T) {
	header := BuildLinkHeader("/songs", url.Values{}, "next-c", "prev-c")

	if !strings.Contains(header, `<`+"/songs?cursor=next-c"+`>; rel="next"`) {
		t.Errorf("expected next link, got %q", header)
	}
	if !strings.Contains(header, `<`+"/songs?cursor=prev-c"+`>; rel="prev"`) {
		t.Errorf("expected prev link, got %q", header)
	}
}

func TestBuildLinkHeaderEmpty(t *testing.T) {
	if header := BuildLinkHeader("/songs", nil, "", ""); header != "" {
		t.Errorf("expected empty header, got %q", header)
	}
}
