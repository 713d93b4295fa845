// Package request builds the JSON bodies sent to the streaming API.
package request

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	gerrors "github.com/tessro/gplay/internal/errors"
	"github.com/tessro/gplay/internal/model"
	"github.com/tessro/gplay/internal/wire"
)

const (
	// DefaultContentFilter is the explicit-content filter level sent with
	// every station request.
	DefaultContentFilter = 1

	// DefaultNumEntries replaces out-of-range entry counts.
	DefaultNumEntries = 25

	// MaxNumEntries is the largest entry count passed through unchanged.
	MaxNumEntries = 78
)

const (
	fieldContentFilter  = "contentFilter"
	fieldStations       = "stations"
	fieldRadioID        = "radioId"
	fieldNumEntries     = "numEntries"
	fieldRecentlyPlayed = "recentlyPlayed"
	fieldTrackID        = "id"
	fieldTrackType      = "type"
)

// ListStationTracks is the body of a station track-list request.
// Values returned by the constructors are not modified afterwards and may be
// shared between goroutines.
type ListStationTracks struct {
	ContentFilter int
	PagingCursor
	Stations []StationSelector
}

// StationSelector picks the station and how many tracks to return from it.
type StationSelector struct {
	RadioID        string
	NumEntries     int
	RecentlyPlayed model.Optional[[]RecentlyPlayedTrack]
}

// RecentlyPlayedTrack is a track the server should leave out of the result.
type RecentlyPlayedTrack struct {
	ID   string
	Type model.TrackType
}

// NewListStationTracks builds a request for numEntries tracks of station.
// A nil recentlyPlayed leaves the exclusion list out of the payload; an
// empty, non-nil slice sends an empty list.
func NewListStationTracks(station model.Station, numEntries int, recentlyPlayed []model.Track) (*ListStationTracks, error) {
	return NewPagedListStationTracks(station, numEntries, recentlyPlayed, "", UnsetMaxResults)
}

// NewPagedListStationTracks is NewListStationTracks with a continuation token
// and page size. See NewPagingCursor for how unset values are expressed.
//
// It fails with an *errors.ArgumentError when no radio ID can be derived
// from station: it needs a direct ID or a curated-station seed.
func NewPagedListStationTracks(station model.Station, numEntries int, recentlyPlayed []model.Track, nextPageToken string, maxResults int) (*ListStationTracks, error) {
	selector, err := newStationSelector(station, numEntries, recentlyPlayed)
	if err != nil {
		return nil, err
	}

	return &ListStationTracks{
		ContentFilter: DefaultContentFilter,
		PagingCursor:  NewPagingCursor(nextPageToken, maxResults),
		Stations:      []StationSelector{selector},
	}, nil
}

func newStationSelector(station model.Station, numEntries int, recentlyPlayed []model.Track) (StationSelector, error) {
	radioID, ok := station.RadioID()
	if !ok {
		return StationSelector{}, gerrors.InvalidArgument("station", "unable to extract radio ID")
	}

	s := StationSelector{
		RadioID:    radioID,
		NumEntries: ClampNumEntries(numEntries),
	}

	if recentlyPlayed != nil {
		tracks := make([]RecentlyPlayedTrack, 0, len(recentlyPlayed))
		for _, t := range recentlyPlayed {
			tracks = append(tracks, RecentlyPlayedTrack{ID: t.ID, Type: t.Type()})
		}
		s.RecentlyPlayed = model.Some(tracks)
	}

	return s, nil
}

// ClampNumEntries returns n if it is within [0, MaxNumEntries], otherwise
// DefaultNumEntries.
func ClampNumEntries(n int) int {
	if n >= 0 && n <= MaxNumEntries {
		return n
	}
	return DefaultNumEntries
}

// Station returns the single station selector of the request.
func (r *ListStationTracks) Station() StationSelector {
	if len(r.Stations) == 0 {
		return StationSelector{}
	}
	return r.Stations[0]
}

// Fingerprint returns a structural hash of the request. Equal payloads have
// equal fingerprints.
func (r *ListStationTracks) Fingerprint() (uint64, error) {
	h, err := hashstructure.Hash(r, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to hash request: %w", err)
	}
	return h, nil
}

// MarshalJSON encodes the request with its wire field names.
func (r ListStationTracks) MarshalJSON() ([]byte, error) {
	fields := []wire.Field{{Name: fieldContentFilter, Value: r.ContentFilter}}
	fields = append(fields, r.PagingCursor.fields()...)
	fields = append(fields, wire.Field{Name: fieldStations, Value: r.Stations})
	return wire.Encode(fields...)
}

// UnmarshalJSON decodes a request previously produced by MarshalJSON.
func (r *ListStationTracks) UnmarshalJSON(data []byte) error {
	obj, err := wire.Decode(data)
	if err != nil {
		return err
	}

	var req ListStationTracks
	if err := obj.Int(fieldContentFilter, &req.ContentFilter); err != nil {
		return err
	}
	if err := req.PagingCursor.decode(obj); err != nil {
		return err
	}
	if err := obj.Into(fieldStations, &req.Stations); err != nil {
		return err
	}

	*r = req
	return nil
}

// MarshalJSON encodes the selector with its wire field names.
func (s StationSelector) MarshalJSON() ([]byte, error) {
	return wire.Encode(
		wire.Field{Name: fieldRadioID, Value: s.RadioID},
		wire.Field{Name: fieldNumEntries, Value: s.NumEntries},
		wire.Field{Name: fieldRecentlyPlayed, Value: s.RecentlyPlayed.Value, Omit: !s.RecentlyPlayed.Present},
	)
}

// UnmarshalJSON decodes a selector. A missing recentlyPlayed stays absent.
func (s *StationSelector) UnmarshalJSON(data []byte) error {
	obj, err := wire.Decode(data)
	if err != nil {
		return err
	}

	var sel StationSelector
	if err := obj.String(fieldRadioID, &sel.RadioID); err != nil {
		return err
	}
	if err := obj.Int(fieldNumEntries, &sel.NumEntries); err != nil {
		return err
	}
	if obj.Has(fieldRecentlyPlayed) {
		tracks := []RecentlyPlayedTrack{}
		if err := obj.Into(fieldRecentlyPlayed, &tracks); err != nil {
			return err
		}
		sel.RecentlyPlayed = model.Some(tracks)
	}

	*s = sel
	return nil
}

// MarshalJSON encodes the track as {"id", "type"}.
func (t RecentlyPlayedTrack) MarshalJSON() ([]byte, error) {
	return wire.Encode(
		wire.Field{Name: fieldTrackID, Value: t.ID},
		wire.Field{Name: fieldTrackType, Value: int(t.Type)},
	)
}

// UnmarshalJSON decodes a track written by MarshalJSON.
func (t *RecentlyPlayedTrack) UnmarshalJSON(data []byte) error {
	obj, err := wire.Decode(data)
	if err != nil {
		return err
	}

	var track RecentlyPlayedTrack
	var typ int
	if err := obj.String(fieldTrackID, &track.ID); err != nil {
		return err
	}
	if err := obj.Int(fieldTrackType, &typ); err != nil {
		return err
	}
	track.Type = model.TrackType(typ)

	*t = track
	return nil
}
