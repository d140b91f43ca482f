package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("caption", StatusMessage)
	if !strings.HasPrefix(s, StatusColor) || !strings.HasSuffix(s, DefaultColor) {
		t.Errorf("Status message expected to be wrapped in color codes. Got %q", s)
	}

	if DecorateText("caption", MessageType(42)) != "caption" {
		t.Error("Unknown message types expected to pass through unchanged")
	}
}

func TestUtils_FormatTime(t *testing.T) {
	tests := map[time.Duration]string{
		1500 * time.Millisecond: "1.50s",
		90 * time.Second:        "1m 30.00s",
		3690 * time.Second:      "1h 1m 30.00s",
	}

	for d, want := range tests {
		if got := FormatTime(d); got != want {
			t.Errorf("FormatTime(%v) expected to be %q. Got %q", d, want, got)
		}
	}
}

func TestUtils_Math(t *testing.T) {
	if Min(2, 5) != 2 || Min(5.5, 2.5) != 2.5 {
		t.Error("Min expected to return the smaller value")
	}
	if Max(2, 5) != 5 || Max(5.5, 2.5) != 5.5 {
		t.Error("Max expected to return the bigger value")
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs expected to return the absolute value")
	}
	if !Contains([]string{"png", "bmp"}, "png") || Contains([]string{"png"}, "svg") {
		t.Error("Contains expected to report slice membership")
	}
}
