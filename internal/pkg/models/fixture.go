package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Sentinel values substituted when optional fixture fields are absent.
const (
	LeagueOther  = "Other"
	VenueUnknown = "To Be Announced"
)

// Broadcast lists the channels carrying a match in one country.
type Broadcast struct {
	Country  string   `json:"country"`
	Channels []string `json:"channels"`
}

// Epoch is a Unix timestamp in seconds. Collector feeds are inconsistent
// about quoting, so both 1700000000 and "1700000000" decode.
type Epoch int64

func (e *Epoch) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid epoch %q: %w", data, err)
	}
	*e = Epoch(v)
	return nil
}

// MatchRecord is one fixture occurrence as produced by the collector.
// MatchID and Kickoff are required; everything else is optional display data.
type MatchRecord struct {
	MatchID  string      `json:"match_id"`
	Kickoff  Epoch       `json:"kickoff"`
	Fixture  string      `json:"fixture"`
	League   string      `json:"league"`
	LeagueID string      `json:"league_id"`
	Venue    string      `json:"venue"`
	Stadium  string      `json:"stadium"`
	TV       []Broadcast `json:"tv_channels"`
}

// KickoffUnix returns the kickoff as a plain int64 epoch.
func (m *MatchRecord) KickoffUnix() int64 { return int64(m.Kickoff) }

// LeagueName returns the grouping league, falling back to the "Other" bucket.
func (m *MatchRecord) LeagueName() string {
	if m.League == "" {
		return LeagueOther
	}
	return m.League
}

// VenueName returns the display venue. Some feeds use "venue", older ones
// use "stadium"; either satisfies the field.
func (m *MatchRecord) VenueName() string {
	if m.Venue != "" {
		return m.Venue
	}
	if m.Stadium != "" {
		return m.Stadium
	}
	return VenueUnknown
}
