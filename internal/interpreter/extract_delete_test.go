package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDelete_ByDate(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      DeleteByDateArgs
	}{
		{"on date", "delete events on 5 jan", DeleteByDateArgs{OnDate: "2026-01-05"}},
		{"before date", "cancel events before 10 march", DeleteByDateArgs{BeforeDate: "2026-03-10"}},
		{"after date", "remove events after 20 feb", DeleteByDateArgs{AfterDate: "2026-02-20"}},
		{"no events noun", "delete on 5 jan", DeleteByDateArgs{OnDate: "2026-01-05"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := extractDelete(tt.utterance, testNow)
			require.NotNil(t, a)
			assert.Equal(t, ActionDeleteByDate, a.Name)
			assert.Equal(t, tt.want, a.Args)
		})
	}
}

func TestExtractDelete_ByTitle(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		title     string
	}{
		{"plain title", "delete AI Workshop", "AI Workshop"},
		{"with article", "cancel the Hackathon", "Hackathon"},
		{"trailing event noun", "remove the Hackathon event", "Hackathon"},
		{"named form", "delete event named Demo Day", "Demo Day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := extractDelete(tt.utterance, testNow)
			require.NotNil(t, a)
			assert.Equal(t, ActionDeleteEvent, a.Name)
			assert.Equal(t, DeleteEventArgs{EventTitle: tt.title}, a.Args)
		})
	}
}

func TestExtractDelete_Declines(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
	}{
		{"date qualifier with unparseable date", "delete events on someday"},
		{"before qualifier without date", "delete everything before the break"},
		{"bare date mistaken for title", "delete 5 jan"},
		{"verb only", "delete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, extractDelete(tt.utterance, testNow))
		})
	}
}
