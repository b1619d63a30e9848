package pagination

import (
	"errors"
	"testing"
)

func TestCursorRoundTrip(t *testing.T) {
	c := Cursor{Type: "song", Value: "req-42"}

	decoded, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != c {
		t.Fatalf("round trip = %+v, want %+v", decoded, c)
	}
}

func TestCursorRoundTripEmptyValue(t *testing.T) {
	c := Cursor{Type: "song", Value: ""}

	decoded, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != c {
		t.Fatalf("round trip = %+v, want %+v", decoded, c)
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	c, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (Cursor{}) {
		t.Fatalf("expected zero cursor, got %+v", c)
	}
}

func TestDecodeCursorInvalidBase64(t *testing.T) {
	_, err := DecodeCursor("!!not-base64!!")
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestDecodeCursorMissingSeparator(t *testing.T) {
	// Valid Base64 but no "type:value" structure inside.
	_, err := DecodeCursor("bm9zZXBhcmF0b3I")
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestDecodeCursorValueWithColons(t *testing.T) {
	c := Cursor{Type: "song", Value: "2024-01-15T10:30:00Z"}

	decoded, err := DecodeCursor(c.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Value != c.Value {
		t.Fatalf("expected value %q preserved, got %q", c.Value, decoded.Value)
	}
}
