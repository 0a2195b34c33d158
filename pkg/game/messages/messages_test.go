package messages

import (
	"testing"
)

func TestGetTranslatesKnownKey(t *testing.T) {
	if got := Get("LEGEND_FLOOR"); got != "floor" {
		t.Errorf("Get(LEGEND_FLOOR) = %q, want %q", got, "floor")
	}
}

func TestGetFormatsArguments(t *testing.T) {
	got := Get("DUMP_WRITTEN", "out/map.txt")
	if got != "map written to out/map.txt" {
		t.Errorf("Get(DUMP_WRITTEN) = %q", got)
	}
}

func TestGetReturnsUnknownKey(t *testing.T) {
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("Get(NO_SUCH_KEY) = %q", got)
	}
}
