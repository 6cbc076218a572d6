package transcripts

import (
	"errors"
	"testing"
)

func TestParseSeasonName(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{name: "S1", want: 1},
		{name: "S10", want: 10},
		{name: "S007", want: 7},
		{name: "Seinfeld", wantErr: true},
		{name: "Season 1", wantErr: true},
		{name: "extras", wantErr: true},
		{name: "S", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeasonName(tt.name)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("expected FormatError, got %v", err)
				}
				if formatErr.Kind != "season" || formatErr.Name != tt.name {
					t.Errorf("unexpected error fields: %+v", formatErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected season %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseEpisodeName(t *testing.T) {
	tests := []struct {
		name      string
		wantNum   int
		wantTitle string
		wantErr   bool
	}{
		{name: "E1-01 - Pilot.txt", wantNum: 1, wantTitle: "Pilot"},
		{name: "E12-3 - The Parking Garage.txt", wantNum: 12, wantTitle: "The Parking Garage"},
		{name: "E2-02 - The Stake Out - Part 1.txt", wantNum: 2, wantTitle: "The Stake Out - Part 1"},
		{name: "E5-05 - The Ex-Girlfriend.txt", wantNum: 5, wantTitle: "The Ex-Girlfriend"},
		{name: "SeinfeldE3-03 - The Pen.txt", wantNum: 3, wantTitle: "The Pen"},
		{name: "E4-04 - .txt", wantNum: 4, wantTitle: ""},
		{name: "01 - Pilot.txt", wantErr: true},
		{name: "Ex-01 - Pilot.txt", wantErr: true},
		{name: "E1-01 - Pilot.md", wantErr: true},
		{name: "E1-01 Pilot.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, title, err := ParseEpisodeName(tt.name)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("expected FormatError, got %v", err)
				}
				if formatErr.Kind != "episode" {
					t.Errorf("expected episode kind, got %q", formatErr.Kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if num != tt.wantNum {
				t.Errorf("expected episode %d, got %d", tt.wantNum, num)
			}
			if title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, title)
			}
		})
	}
}

func TestNameBuildersRoundTrip(t *testing.T) {
	season, err := ParseSeasonName(SeasonDirName(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if season != 9 {
		t.Errorf("expected season 9, got %d", season)
	}

	name := EpisodeFileName(23, "The Opposite - Director's Cut")
	if name != "E23-23 - The Opposite - Director's Cut.txt" {
		t.Errorf("unexpected file name %q", name)
	}

	num, title, err := ParseEpisodeName(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 23 || title != "The Opposite - Director's Cut" {
		t.Errorf("round trip mismatch: %d %q", num, title)
	}
}

func TestFormatError_Message(t *testing.T) {
	err := &FormatError{Kind: "season", Name: "extras", Reason: "missing \"S\" marker"}
	want := `malformed season name "extras": missing "S" marker`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
