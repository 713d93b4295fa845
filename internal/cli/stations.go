package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	gerrors "github.com/tessro/gplay/internal/errors"
	"github.com/tessro/gplay/internal/model"
	"github.com/tessro/gplay/internal/request"
	"github.com/tessro/gplay/internal/styles"
)

type stationTracksOptions struct {
	stationID    string
	seed         string
	seedType     string
	pickSeedType bool
	numEntries   int
	recent       []string
	pageToken    string
	maxResults   int
	copy         bool
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func newStationTracksCmd(a *app) *cobra.Command {
	o := &stationTracksOptions{}

	cmd := &cobra.Command{
		Use:     "station-tracks",
		Aliases: []string{"st"},
		Short:   "Build a station track-list request",
		Long: `Build the request body that lists the tracks of a station.

The station is given either by its ID or by a seed. Only curated-station
seeds resolve to a radio ID; any other seed type is rejected.

Entry counts outside 0-78 fall back to 25. Tracks passed with --recent are
excluded from the result; leave the flag out to omit the list entirely, or
pass --recent="" to send an empty list.

Examples:
  gplay station-tracks --station-id 3f6c1e-radio
  gplay station-tracks --seed L2hdvqzmcx --num-entries 40
  gplay station-tracks --station-id 3f6c1e-radio --recent T123,A55 --json
  gplay station-tracks --station-id 3f6c1e-radio --page-token CjsK --max-results 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStationTracks(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.stationID, "station-id", "", "Station ID")
	f.StringVar(&o.seed, "seed", "", "Station seed value")
	f.StringVar(&o.seedType, "seed-type", model.SeedTypeCuratedStation.String(), "Seed type name or number")
	f.BoolVar(&o.pickSeedType, "pick-seed-type", false, "Choose the seed type interactively")
	f.IntVarP(&o.numEntries, "num-entries", "n", 0, "Number of tracks to request (default from config)")
	f.StringSliceVar(&o.recent, "recent", nil, "Recently played track IDs to exclude")
	f.StringVar(&o.pageToken, "page-token", "", "Continuation token from a previous page")
	f.IntVar(&o.maxResults, "max-results", request.UnsetMaxResults, "Page size, -1 for the server default (default from config)")
	f.BoolVar(&o.copy, "copy", false, "Copy the JSON payload to the clipboard")

	return cmd
}

func (a *app) runStationTracks(cmd *cobra.Command, o *stationTracksOptions) error {
	if o.pickSeedType {
		picked, err := pickSeedType()
		if err != nil {
			return err
		}
		o.seedType = picked
	}

	station, err := o.station()
	if err != nil {
		return err
	}

	numEntries := o.numEntries
	if !cmd.Flags().Changed("num-entries") {
		numEntries = a.cfg.Station.NumEntries
	}
	maxResults := o.maxResults
	if !cmd.Flags().Changed("max-results") && a.cfg.Station.MaxResults > 0 {
		maxResults = a.cfg.Station.MaxResults
	}

	var recent []model.Track
	if cmd.Flags().Changed("recent") {
		recent = recentTracks(o.recent)
	}

	req, err := request.NewPagedListStationTracks(station, numEntries, recent, o.pageToken, maxResults)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	fingerprint, err := req.Fingerprint()
	if err != nil {
		return err
	}

	sel := req.Station()
	a.logger.Debug("built station request",
		"radio_id", sel.RadioID,
		"requested_entries", numEntries,
		"num_entries", sel.NumEntries,
		"fingerprint", formatFingerprint(fingerprint),
		"size", humanize.Bytes(uint64(len(payload))),
	)
	if numEntries != sel.NumEntries {
		a.logger.Info("entry count out of range, using default", "requested", numEntries, "used", sel.NumEntries)
	}

	if o.copy {
		if clipboard.Unsupported {
			return gerrors.ErrClipboardDisabled
		}
		if err := clipboardWrite(string(payload)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		a.logger.Info("copied payload to clipboard", "size", humanize.Bytes(uint64(len(payload))))
	}

	out := cmd.OutOrStdout()
	switch a.outputMode() {
	case OutputJSON:
		return writeJSON(out, req)
	case OutputMinimal:
		_, err := fmt.Fprintln(out, string(payload))
		return err
	case OutputTable:
		renderStationRow(out, req)
		if tracks, ok := sel.RecentlyPlayed.Get(); ok && len(tracks) > 0 {
			fmt.Fprintln(out)
			renderRecentlyPlayed(out, sel)
		}
		return nil
	default:
		_, err := fmt.Fprintln(out, renderStationSummary(req, fingerprint, len(payload)))
		if err != nil {
			return err
		}
		renderRecentlyPlayed(out, sel)
		return nil
	}
}

// station assembles the station reference from the flags.
func (o *stationTracksOptions) station() (model.Station, error) {
	st := model.Station{ID: strings.TrimSpace(o.stationID)}
	if o.seed == "" {
		return st, nil
	}

	seedType, err := model.ParseSeedType(o.seedType)
	if err != nil {
		return model.Station{}, gerrors.InvalidArgument("seed-type", err.Error())
	}
	st.Seed = &model.StationSeed{SeedType: seedType, Seed: strings.TrimSpace(o.seed)}
	return st, nil
}

// recentTracks converts flag values to tracks, skipping blanks. The result is
// never nil so an explicitly empty flag still sends an empty list.
func recentTracks(ids []string) []model.Track {
	tracks := make([]model.Track, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		tracks = append(tracks, model.Track{ID: id})
	}
	return tracks
}

func pickSeedType() (string, error) {
	var options []huh.Option[string]
	for _, t := range model.SeedTypes {
		options = append(options, huh.NewOption(t.String(), t.String()))
	}

	selected := model.SeedTypeCuratedStation.String()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select seed type").
				Description("Only curated stations resolve to a radio ID").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return selected, nil
}

func renderStationSummary(req *request.ListStationTracks, fingerprint uint64, size int) string {
	sel := req.Station()

	token := styles.Unset()
	if v, ok := req.NextPageToken.Get(); ok {
		token = TruncateString(v, 40)
	}
	maxResults := styles.Unset()
	if v, ok := req.MaxResults.Get(); ok {
		maxResults = strconv.Itoa(v)
	}
	recent := styles.Unset()
	if v, ok := sel.RecentlyPlayed.Get(); ok {
		recent = fmt.Sprintf("%d tracks", len(v))
	}

	return styles.Panel("Station track request",
		styles.KeyValue("Radio ID", sel.RadioID),
		styles.KeyValue("Entries", strconv.Itoa(sel.NumEntries)),
		styles.KeyValue("Content filter", strconv.Itoa(req.ContentFilter)),
		styles.KeyValue("Page token", token),
		styles.KeyValue("Max results", maxResults),
		styles.KeyValue("Recently played", recent),
		styles.KeyValue("Payload", humanize.Bytes(uint64(size))),
		styles.KeyValue("Fingerprint", formatFingerprint(fingerprint)),
	)
}

func renderStationRow(out io.Writer, req *request.ListStationTracks) {
	sel := req.Station()

	var token string
	if v, ok := req.NextPageToken.Get(); ok {
		token = TruncateString(v, 40)
	}
	maxResults := "-"
	if v, ok := req.MaxResults.Get(); ok {
		maxResults = strconv.Itoa(v)
	}

	table := NewTableWriter(out, "RADIO ID", "ENTRIES", "PAGE TOKEN", "MAX RESULTS")
	table.Row(sel.RadioID, strconv.Itoa(sel.NumEntries), orDash(token), maxResults)
	table.Flush()
}

func renderRecentlyPlayed(out io.Writer, sel request.StationSelector) {
	tracks, ok := sel.RecentlyPlayed.Get()
	if !ok || len(tracks) == 0 {
		return
	}

	table := NewTableWriter(out, "#", "TRACK ID", "TYPE")
	for i, t := range tracks {
		table.Row(strconv.Itoa(i+1), t.ID, styles.TrackType(t.Type))
	}
	table.Flush()
}

func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
