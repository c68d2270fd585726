package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCreate(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      CreateEventArgs
	}{
		{
			name:      "full form with explicit date and venue",
			utterance: "create AI Workshop on 16 March 2026 at 3 PM in Lab 204",
			want:      CreateEventArgs{Title: "AI Workshop", Date: "2026-03-16", Time: "15:00", Location: "Lab 204"},
		},
		{
			name:      "venue with trailing punctuation",
			utterance: "create AI Workshop tomorrow at 3 PM in Lab 204.",
			want:      CreateEventArgs{Title: "AI Workshop", Date: "2026-03-16", Time: "15:00", Location: "Lab 204"},
		},
		{
			name:      "clock phrase not read as venue",
			utterance: "schedule Robotics Seminar on 2 April 2026 at 11 am",
			want:      CreateEventArgs{Title: "Robotics Seminar", Date: "2026-04-02", Time: "11:00", Location: "TBD"},
		},
		{
			name:      "event named form",
			utterance: "add event named Demo Day on 1 May 2026 at 10 am",
			want:      CreateEventArgs{Title: "Demo Day", Date: "2026-05-01", Time: "10:00", Location: "TBD"},
		},
		{
			name:      "today keyword",
			utterance: "create Standup today at 9 am",
			want:      CreateEventArgs{Title: "Standup", Date: "2026-03-15", Time: "09:00", Location: "TBD"},
		},
		{
			name:      "proximity title from event noun",
			utterance: "organize a robotics workshop tomorrow at 5 pm",
			want:      CreateEventArgs{Title: "robotics workshop", Date: "2026-03-16", Time: "17:00", Location: "TBD"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := extractCreate(tt.utterance, testNow)
			require.NotNil(t, a)
			assert.Equal(t, ActionCreateEvent, a.Name)
			assert.Equal(t, tt.want, a.Args)
		})
	}
}

// Title, date and time are all required; a partial match yields nil.
func TestExtractCreate_Declines(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
	}{
		{"no time", "create Tech Talk tomorrow"},
		{"no date", "create Tech Talk at 3 pm"},
		{"no title", "plan something fun tomorrow at 3 pm"},
		{"verb only", "create"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, extractCreate(tt.utterance, testNow))
		})
	}
}

func TestProximityTitle(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"organize a robotics workshop tomorrow", "robotics workshop"},
		{"plan the annual tech hackathon", "annual tech hackathon"},
		{"organize a workshop", "workshop"},
		{"plan something fun", ""},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, proximityTitle(tt.utterance))
		})
	}
}
