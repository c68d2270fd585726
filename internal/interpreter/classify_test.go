package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      Category
	}{
		{"delete the workshop", CategoryDelete},
		{"please cancel events on 5 jan", CategoryDelete},
		{"reschedule the workshop to 5pm", CategoryUpdate},
		{"change the seminar time to 3 pm", CategoryUpdate},
		{"rename Hackathon to Hacknight", CategoryUpdate},
		{"show events this week", CategoryQuery},
		{"how many events tomorrow", CategoryQuery},
		{"tell me about upcoming events", CategoryQuery},
		{"events in march", CategoryQuery},
		{"events between 5 jan and 20 jan", CategoryQuery},
		{"create AI Workshop tomorrow at 3 PM", CategoryCreate},
		{"can you schedule a meeting", CategoryCreate},
		{"organize a hackathon", CategoryCreate},
		{"mark Dr. Sharma absent today", CategoryFaculty},
		{"Prof. Verma is absent tomorrow", CategoryFaculty},
		{"notify all students about the exam", CategoryNotification},
		{"send an alert to staff about fire drill", CategoryNotification},
		{"hello there", CategoryChat},
		{"thanks!", CategoryChat},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance))
		})
	}
}

// Earlier rules in the priority table shadow later ones.
func TestClassify_Priority(t *testing.T) {
	assert.Equal(t, CategoryDelete, Classify("delete and update the workshop"))
	assert.Equal(t, CategoryUpdate, Classify("update the list of events"))
	assert.Equal(t, CategoryQuery, Classify("show how to add an event"))
	assert.Equal(t, CategoryCreate, Classify("add a notification event"))
	// "faculty" wins over the send verb; recipient-level sends to faculty go
	// through the freeform fallback instead.
	assert.Equal(t, CategoryFaculty, Classify("send an alert to faculty about fire drill"))
}
