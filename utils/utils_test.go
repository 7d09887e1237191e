package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/logo.svg") {
		t.Errorf("A valid URL should have been accepted")
	}
	if IsValidUrl("logo.svg") {
		t.Errorf("A relative path should not be treated as an URL")
	}
	if IsValidUrl("://missing-scheme") {
		t.Errorf("An URL without scheme should have been rejected")
	}
}

func TestUtils_DecorateText(t *testing.T) {
	decorated := DecorateText("ok", SuccessMessage)
	if !strings.Contains(decorated, "ok") || !strings.Contains(decorated, SuccessColor) {
		t.Errorf("The decorated text should contain the message and the color code, got %q", decorated)
	}
}

func TestUtils_FormatTime(t *testing.T) {
	if got := FormatTime(1500 * time.Millisecond); got != "1.50s" {
		t.Errorf("unexpected duration format: %q", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("unexpected duration format: %q", got)
	}
}

func TestUtils_MinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Errorf("Min should return the smaller value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Errorf("Max should return the bigger value")
	}
}
