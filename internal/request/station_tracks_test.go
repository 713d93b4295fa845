package request

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gerrors "github.com/tessro/gplay/internal/errors"
	"github.com/tessro/gplay/internal/model"
)

func TestNewListStationTracks_RadioID(t *testing.T) {
	tests := []struct {
		name    string
		station model.Station
		want    string
		wantErr bool
	}{
		{
			name:    "direct id",
			station: model.Station{ID: "radio-1"},
			want:    "radio-1",
		},
		{
			name: "direct id ignores seed",
			station: model.Station{
				ID:   "radio-1",
				Seed: &model.StationSeed{SeedType: model.SeedTypeArtist, Seed: "A1"},
			},
			want: "radio-1",
		},
		{
			// Seed-only curated stations resolve to the seed instead of failing.
			name:    "curated station seed",
			station: model.Station{Seed: &model.StationSeed{SeedType: model.SeedTypeCuratedStation, Seed: "L2hdvqzmcx"}},
			want:    "L2hdvqzmcx",
		},
		{
			name:    "non-curated seed",
			station: model.Station{Seed: &model.StationSeed{SeedType: model.SeedTypeAlbum, Seed: "B7"}},
			wantErr: true,
		},
		{
			name:    "no id and no seed",
			station: model.Station{Name: "Unnamed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewListStationTracks(tt.station, 10, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewListStationTracks() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if req != nil {
					t.Errorf("NewListStationTracks() = %+v, want nil on error", req)
				}
				if !errors.Is(err, gerrors.ErrInvalidArgument) {
					t.Errorf("error %v is not ErrInvalidArgument", err)
				}
				if !strings.Contains(err.Error(), "unable to extract radio ID") {
					t.Errorf("error = %q, want radio ID message", err.Error())
				}
				return
			}
			if got := req.Station().RadioID; got != tt.want {
				t.Errorf("RadioID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampNumEntries(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: 25, want: 25},
		{in: 78, want: 78},
		{in: 79, want: DefaultNumEntries},
		{in: 80, want: DefaultNumEntries},
		{in: 1000, want: DefaultNumEntries},
		{in: -1, want: DefaultNumEntries},
		{in: -2, want: DefaultNumEntries},
	}

	station := model.Station{ID: "radio-1"}
	for _, tt := range tests {
		if got := ClampNumEntries(tt.in); got != tt.want {
			t.Errorf("ClampNumEntries(%d) = %d, want %d", tt.in, got, tt.want)
		}

		req, err := NewListStationTracks(station, tt.in, nil)
		if err != nil {
			t.Fatalf("NewListStationTracks() error = %v", err)
		}
		if got := req.Station().NumEntries; got != tt.want {
			t.Errorf("NumEntries for %d = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewListStationTracks_Defaults(t *testing.T) {
	req, err := NewListStationTracks(model.Station{ID: "radio-1"}, 5, nil)
	if err != nil {
		t.Fatalf("NewListStationTracks() error = %v", err)
	}

	if req.ContentFilter != DefaultContentFilter {
		t.Errorf("ContentFilter = %d, want %d", req.ContentFilter, DefaultContentFilter)
	}
	if len(req.Stations) != 1 {
		t.Fatalf("len(Stations) = %d, want 1", len(req.Stations))
	}
	if req.NextPageToken.Present || req.MaxResults.Present {
		t.Errorf("PagingCursor = %+v, want unset", req.PagingCursor)
	}
	if !req.IsFirstPage() {
		t.Error("IsFirstPage() = false, want true")
	}
	if req.Station().RecentlyPlayed.Present {
		t.Error("RecentlyPlayed present for nil input")
	}
}

func TestNewListStationTracks_RecentlyPlayed(t *testing.T) {
	tracks := []model.Track{{ID: "T123"}, {ID: "A55"}, {ID: "Tabc"}}

	req, err := NewListStationTracks(model.Station{ID: "radio-1"}, 25, tracks)
	if err != nil {
		t.Fatalf("NewListStationTracks() error = %v", err)
	}

	got, ok := req.Station().RecentlyPlayed.Get()
	if !ok {
		t.Fatal("RecentlyPlayed absent, want present")
	}
	want := []RecentlyPlayedTrack{
		{ID: "T123", Type: model.TrackTypeStore},
		{ID: "A55", Type: model.TrackTypeLibrary},
		{ID: "Tabc", Type: model.TrackTypeStore},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RecentlyPlayed mismatch (-want +got):\n%s", diff)
	}

	// The request keeps its own copy of the projection.
	tracks[0].ID = "changed"
	if req.Station().RecentlyPlayed.Value[0].ID != "T123" {
		t.Error("request changed after mutating input slice")
	}
}

func TestListStationTracksMarshal(t *testing.T) {
	station := model.Station{ID: "radio-1"}

	tests := []struct {
		name  string
		build func() (*ListStationTracks, error)
		want  string
	}{
		{
			name: "nil recently played is omitted",
			build: func() (*ListStationTracks, error) {
				return NewListStationTracks(station, 10, nil)
			},
			want: `{"contentFilter":1,"stations":[{"radioId":"radio-1","numEntries":10}]}`,
		},
		{
			name: "empty recently played is kept",
			build: func() (*ListStationTracks, error) {
				return NewListStationTracks(station, 10, []model.Track{})
			},
			want: `{"contentFilter":1,"stations":[{"radioId":"radio-1","numEntries":10,"recentlyPlayed":[]}]}`,
		},
		{
			name: "recently played order and types",
			build: func() (*ListStationTracks, error) {
				return NewListStationTracks(station, 10, []model.Track{{ID: "T123"}, {ID: "A55"}})
			},
			want: `{"contentFilter":1,"stations":[{"radioId":"radio-1","numEntries":10,"recentlyPlayed":[{"id":"T123","type":1},{"id":"A55","type":0}]}]}`,
		},
		{
			name: "paging fields",
			build: func() (*ListStationTracks, error) {
				return NewPagedListStationTracks(station, 99, nil, "tok-2", 50)
			},
			want: `{"contentFilter":1,"nextPageToken":"tok-2","maxResults":50,"stations":[{"radioId":"radio-1","numEntries":25}]}`,
		},
		{
			name: "zero max results is sent",
			build: func() (*ListStationTracks, error) {
				return NewPagedListStationTracks(station, 10, nil, "", 0)
			},
			want: `{"contentFilter":1,"maxResults":0,"stations":[{"radioId":"radio-1","numEntries":10}]}`,
		},
		{
			name: "unset max results is omitted",
			build: func() (*ListStationTracks, error) {
				return NewPagedListStationTracks(station, 10, nil, "tok", UnsetMaxResults)
			},
			want: `{"contentFilter":1,"nextPageToken":"tok","stations":[{"radioId":"radio-1","numEntries":10}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.build()
			if err != nil {
				t.Fatalf("build error = %v", err)
			}

			got, err := json.Marshal(req)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestListStationTracksRoundTrip(t *testing.T) {
	station := model.Station{Seed: &model.StationSeed{SeedType: model.SeedTypeCuratedStation, Seed: "curated-1"}}

	tests := []struct {
		name           string
		recentlyPlayed []model.Track
		pageToken      string
		maxResults     int
	}{
		{name: "minimal", maxResults: UnsetMaxResults},
		{name: "empty recently played", recentlyPlayed: []model.Track{}, maxResults: UnsetMaxResults},
		{name: "full", recentlyPlayed: []model.Track{{ID: "T1"}, {ID: "x2"}}, pageToken: "next", maxResults: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewPagedListStationTracks(station, 30, tt.recentlyPlayed, tt.pageToken, tt.maxResults)
			if err != nil {
				t.Fatalf("NewPagedListStationTracks() error = %v", err)
			}

			data, err := json.Marshal(req)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			var decoded ListStationTracks
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if diff := cmp.Diff(*req, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListStationTracksWireShape(t *testing.T) {
	req, err := NewPagedListStationTracks(model.Station{ID: "r"}, 3, []model.Track{{ID: "T9"}}, "p", 7)
	if err != nil {
		t.Fatalf("NewPagedListStationTracks() error = %v", err)
	}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Parse against the documented shape, independent of the model types.
	var doc struct {
		ContentFilter int    `json:"contentFilter"`
		NextPageToken string `json:"nextPageToken"`
		MaxResults    int    `json:"maxResults"`
		Stations      []struct {
			RadioID        string `json:"radioId"`
			NumEntries     int    `json:"numEntries"`
			RecentlyPlayed []struct {
				ID   string `json:"id"`
				Type int    `json:"type"`
			} `json:"recentlyPlayed"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if doc.ContentFilter != 1 || doc.NextPageToken != "p" || doc.MaxResults != 7 {
		t.Errorf("top level = %+v", doc)
	}
	if len(doc.Stations) != 1 {
		t.Fatalf("len(stations) = %d, want 1", len(doc.Stations))
	}
	s := doc.Stations[0]
	if s.RadioID != "r" || s.NumEntries != 3 {
		t.Errorf("station = %+v", s)
	}
	if len(s.RecentlyPlayed) != 1 || s.RecentlyPlayed[0].ID != "T9" || s.RecentlyPlayed[0].Type != 1 {
		t.Errorf("recentlyPlayed = %+v", s.RecentlyPlayed)
	}
}

func TestListStationTracksUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not an object", input: `[]`},
		{name: "bad content filter", input: `{"contentFilter":"one"}`},
		{name: "bad token", input: `{"nextPageToken":5}`},
		{name: "bad stations", input: `{"stations":{}}`},
		{name: "bad track type", input: `{"stations":[{"recentlyPlayed":[{"id":"T1","type":"store"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ListStationTracks
			if err := json.Unmarshal([]byte(tt.input), &req); err == nil {
				t.Errorf("Unmarshal(%s) expected error", tt.input)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	station := model.Station{ID: "radio-1"}
	tracks := []model.Track{{ID: "T1"}}

	a, err := NewListStationTracks(station, 10, tracks)
	if err != nil {
		t.Fatalf("NewListStationTracks() error = %v", err)
	}
	b, err := NewListStationTracks(station, 10, tracks)
	if err != nil {
		t.Fatalf("NewListStationTracks() error = %v", err)
	}
	c, err := NewListStationTracks(station, 11, tracks)
	if err != nil {
		t.Fatalf("NewListStationTracks() error = %v", err)
	}

	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	fb, _ := b.Fingerprint()
	fc, _ := c.Fingerprint()

	if fa != fb {
		t.Errorf("Fingerprint() differs for equal requests: %d != %d", fa, fb)
	}
	if fa == fc {
		t.Errorf("Fingerprint() equal for different requests: %d", fa)
	}
}

func TestStationOnEmptyRequest(t *testing.T) {
	var req ListStationTracks
	if got := req.Station(); got.RadioID != "" || got.RecentlyPlayed.Present {
		t.Errorf("Station() = %+v, want zero selector", got)
	}
}
