package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUpdate(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		title     string
		updates   EventUpdates
	}{
		{
			name:      "rename by name keyword",
			utterance: "update Hackathon name to Hacknight",
			title:     "Hackathon",
			updates:   EventUpdates{Title: "Hacknight"},
		},
		{
			name:      "time change",
			utterance: "change the seminar time to 3 pm",
			title:     "seminar",
			updates:   EventUpdates{Time: "15:00"},
		},
		{
			name:      "reschedule to clock time",
			utterance: "reschedule the workshop to 5pm",
			title:     "workshop",
			updates:   EventUpdates{Time: "17:00"},
		},
		{
			name:      "two word title before field keyword",
			utterance: "update AI Workshop time to 4 pm",
			title:     "AI Workshop",
			updates:   EventUpdates{Time: "16:00"},
		},
		{
			name:      "move to tomorrow",
			utterance: "move the seminar to tomorrow",
			title:     "seminar",
			updates:   EventUpdates{Date: "2026-03-16"},
		},
		{
			name:      "explicit date",
			utterance: "change the workshop date to 20 april 2026",
			title:     "workshop",
			updates:   EventUpdates{Date: "2026-04-20"},
		},
		{
			name:      "location change",
			utterance: "change the workshop location to auditorium",
			title:     "workshop",
			updates:   EventUpdates{Location: "auditorium"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := extractUpdate(tt.utterance, testNow)
			require.NotNil(t, a)
			assert.Equal(t, ActionUpdateEvent, a.Name)
			assert.Equal(t, UpdateEventArgs{EventTitle: tt.title, Updates: tt.updates}, a.Args)
		})
	}
}

func TestExtractUpdate_Declines(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
	}{
		{"target without updates", "update the workshop"},
		{"updates without target", "rename to Hacknight"},
		{"verb only", "change"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, extractUpdate(tt.utterance, testNow))
		})
	}
}
