package model

import "strings"

// TrackType distinguishes the two track-id namespaces of the API.
type TrackType int

const (
	TrackTypeLibrary TrackType = 0 // Uploaded or library track
	TrackTypeStore   TrackType = 1 // Catalog track, id starts with "T"
)

// Track references a track by its opaque ID.
type Track struct {
	ID     string
	Title  string
	Artist string
}

// Type returns the namespace of the track's ID.
func (t Track) Type() TrackType {
	return TrackIDType(t.ID)
}

// TrackIDType classifies a track id by its first character.
func TrackIDType(id string) TrackType {
	if strings.HasPrefix(id, "T") {
		return TrackTypeStore
	}
	return TrackTypeLibrary
}
