package interpreter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFreeform is a canned FreeformClassifier for fallback tests.
type stubFreeform struct {
	res   *FreeformResult
	err   error
	calls int
}

func (s *stubFreeform) ClassifyFreeform(ctx context.Context, text string, now time.Time) (*FreeformResult, error) {
	s.calls++
	return s.res, s.err
}

func TestResolve_BlankInput(t *testing.T) {
	r := NewResolver(nil)
	for _, input := range []string{"", "   ", "\t\n"} {
		a := r.Resolve(context.Background(), input, testNow)
		assert.Equal(t, ActionGeneralChat, a.Name)
		assert.Equal(t, GeneralChatArgs{Reply: invalidRequestReply}, a.Args)
	}
}

// A rule match is terminal; the fallback is never consulted.
func TestResolve_RuleMatchSkipsFallback(t *testing.T) {
	stub := &stubFreeform{res: &FreeformResult{Action: "general_chat"}}
	r := NewResolver(stub)

	a := r.Resolve(context.Background(), "delete AI Workshop", testNow)
	assert.Equal(t, ActionDeleteEvent, a.Name)
	assert.Equal(t, DeleteEventArgs{EventTitle: "AI Workshop"}, a.Args)
	assert.Zero(t, stub.calls)
}

func TestResolve_NoFallbackYieldsHelp(t *testing.T) {
	r := NewResolver(nil)
	a := r.Resolve(context.Background(), "blorp qwerty zzz", testNow)
	assert.Equal(t, ActionGeneralChat, a.Name)
	assert.Equal(t, GeneralChatArgs{Reply: helpReply}, a.Args)
}

func TestResolve_FallbackMapsCreate(t *testing.T) {
	stub := &stubFreeform{res: &FreeformResult{
		Action: "create_event",
		Fields: map[string]string{
			"title": "Guest Lecture",
			"date":  "tomorrow",
			"time":  "4 pm",
		},
	}}
	r := NewResolver(stub)

	a := r.Resolve(context.Background(), "we should do that guest lecture thing", testNow)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, ActionCreateEvent, a.Name)
	assert.Equal(t, CreateEventArgs{
		Title: "Guest Lecture", Date: "2026-03-16", Time: "16:00", Location: "TBD",
	}, a.Args)
}

func TestResolve_FallbackErrorYieldsHelp(t *testing.T) {
	stub := &stubFreeform{err: errors.New("model unavailable")}
	r := NewResolver(stub)

	a := r.Resolve(context.Background(), "blorp qwerty zzz", testNow)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, ActionGeneralChat, a.Name)
	assert.Equal(t, GeneralChatArgs{Reply: helpReply}, a.Args)
}

// A mapped action with missing required fields lands on help instead of
// producing a malformed descriptor.
func TestResolve_FallbackMissingFieldsYieldsHelp(t *testing.T) {
	stub := &stubFreeform{res: &FreeformResult{
		Action: "create_event",
		Fields: map[string]string{"title": "Guest Lecture"},
	}}
	r := NewResolver(stub)

	a := r.Resolve(context.Background(), "blorp qwerty zzz", testNow)
	assert.Equal(t, ActionGeneralChat, a.Name)
	assert.Equal(t, GeneralChatArgs{Reply: helpReply}, a.Args)
}

func TestResolve_FallbackUnknownActionBecomesChat(t *testing.T) {
	stub := &stubFreeform{res: &FreeformResult{
		Action: "tell_joke",
		Fields: map[string]string{"reply": "Why did the robot cross the road?"},
	}}
	r := NewResolver(stub)

	a := r.Resolve(context.Background(), "got a joke for us?", testNow)
	assert.Equal(t, ActionGeneralChat, a.Name)
	assert.Equal(t, GeneralChatArgs{Reply: "Why did the robot cross the road?"}, a.Args)
}

// Every input, including adversarial ones, yields a well-formed action.
func TestResolve_Totality(t *testing.T) {
	r := NewResolver(nil)
	inputs := []string{
		"!!!",
		"delete",
		"create on at in",
		"notify about about about",
		strings.Repeat("a ", 5000),
		"'; DROP TABLE events; --",
		"日本語のテキスト",
	}
	for _, input := range inputs {
		a := r.Resolve(context.Background(), input, testNow)
		require.True(t, IsValidAction(a.Name), "input %q produced action %q", input, a.Name)
		require.NotNil(t, a.Args)
	}
}

// The same utterance always resolves to the same descriptor.
func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(nil)
	first := r.Resolve(context.Background(), "show events this week", testNow)
	second := r.Resolve(context.Background(), "show events this week", testNow)
	assert.Equal(t, first, second)
}

func TestMapFreeform(t *testing.T) {
	tests := []struct {
		name string
		res  FreeformResult
		want *Action
	}{
		{
			name: "mark absent with relative date",
			res: FreeformResult{
				Action: "mark_teacher_absent",
				Fields: map[string]string{"teacher_name": "Dr. Sharma", "date": "today"},
			},
			want: &Action{Name: ActionMarkTeacherAbsent, Args: MarkTeacherAbsentArgs{
				TeacherName: "Dr. Sharma", Date: "2026-03-15",
			}},
		},
		{
			name: "delete without identifier declines",
			res:  FreeformResult{Action: "delete_event"},
			want: nil,
		},
		{
			name: "query with unknown timeframe defaults to upcoming",
			res: FreeformResult{
				Action: "query_events",
				Fields: map[string]string{"timeframe": "someday"},
			},
			want: &Action{Name: ActionQueryEvents, Args: QueryEventsArgs{Timeframe: TimeframeUpcoming}},
		},
		{
			name: "notification requires both fields",
			res: FreeformResult{
				Action: "send_notification",
				Fields: map[string]string{"recipient": "all students"},
			},
			want: nil,
		},
		{
			name: "chat without reply falls back to help",
			res:  FreeformResult{Action: "general_chat"},
			want: chatAction(helpReply),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapFreeform(&tt.res, testNow))
		})
	}
}
