package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SeedType identifies what a station seed points at.
type SeedType int

const (
	SeedTypeLibraryTrack   SeedType = 1
	SeedTypeStoreTrack     SeedType = 2
	SeedTypeArtist         SeedType = 3
	SeedTypeAlbum          SeedType = 4
	SeedTypeGenre          SeedType = 5
	SeedTypeFeelingLucky   SeedType = 6
	SeedTypePlaylist       SeedType = 8
	SeedTypeCuratedStation SeedType = 9
)

var seedTypeNames = map[SeedType]string{
	SeedTypeLibraryTrack:   "LIBRARY_TRACK",
	SeedTypeStoreTrack:     "STORE_TRACK",
	SeedTypeArtist:         "ARTIST",
	SeedTypeAlbum:          "ALBUM",
	SeedTypeGenre:          "GENRE",
	SeedTypeFeelingLucky:   "FEELING_LUCKY",
	SeedTypePlaylist:       "PLAYLIST",
	SeedTypeCuratedStation: "CURATED_STATION",
}

// SeedTypes lists the known seed types in ascending order.
var SeedTypes = []SeedType{
	SeedTypeLibraryTrack,
	SeedTypeStoreTrack,
	SeedTypeArtist,
	SeedTypeAlbum,
	SeedTypeGenre,
	SeedTypeFeelingLucky,
	SeedTypePlaylist,
	SeedTypeCuratedStation,
}

func (t SeedType) String() string {
	if name, ok := seedTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SeedType(%d)", int(t))
}

// ParseSeedType parses a seed type name (e.g. "curated-station",
// "CURATED_STATION") or its numeric value.
func ParseSeedType(s string) (SeedType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		t := SeedType(n)
		if _, ok := seedTypeNames[t]; ok {
			return t, nil
		}
		return 0, fmt.Errorf("unknown seed type: %d", n)
	}

	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for t, n := range seedTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown seed type: %q", s)
}

// StationSeed is a typed pointer a station was derived from.
type StationSeed struct {
	SeedType SeedType
	Seed     string
}

// Station identifies a radio station, either directly by ID or through a seed.
type Station struct {
	ID   string
	Name string
	Seed *StationSeed
}

// RadioID returns the identifier the API accepts for this station.
// A direct ID wins; otherwise only a curated-station seed yields one.
func (s Station) RadioID() (string, bool) {
	if s.ID != "" {
		return s.ID, true
	}
	if s.Seed != nil && s.Seed.SeedType == SeedTypeCuratedStation && s.Seed.Seed != "" {
		return s.Seed.Seed, true
	}
	return "", false
}
