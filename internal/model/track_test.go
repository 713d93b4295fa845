package model

import "testing"

func TestTrackIDType(t *testing.T) {
	tests := []struct {
		id   string
		want TrackType
	}{
		{id: "T123", want: TrackTypeStore},
		{id: "Tz", want: TrackTypeStore},
		{id: "A55", want: TrackTypeLibrary},
		{id: "t123", want: TrackTypeLibrary},
		{id: "0b4c-uuid", want: TrackTypeLibrary},
		{id: "", want: TrackTypeLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := TrackIDType(tt.id); got != tt.want {
				t.Errorf("TrackIDType(%q) = %d, want %d", tt.id, got, tt.want)
			}
			if got := (Track{ID: tt.id}).Type(); got != tt.want {
				t.Errorf("Track.Type() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	none := None[string]()
	if _, ok := none.Get(); ok {
		t.Error("None().Get() present = true, want false")
	}
	if got := none.OrElse("def"); got != "def" {
		t.Errorf("OrElse() = %q, want %q", got, "def")
	}

	var zero Optional[int]
	if zero.Present {
		t.Error("zero Optional is present, want absent")
	}

	some := Some("")
	v, ok := some.Get()
	if !ok || v != "" {
		t.Errorf("Some(\"\").Get() = %q, %v, want \"\", true", v, ok)
	}
	if got := some.OrElse("def"); got != "" {
		t.Errorf("OrElse() = %q, want empty", got)
	}
}
