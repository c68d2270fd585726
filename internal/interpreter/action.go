package interpreter

// ActionName identifies one executable operation the dispatcher understands.
type ActionName string

const (
	ActionCreateEvent       ActionName = "create_event"
	ActionDeleteEvent       ActionName = "delete_event"
	ActionDeleteByDate      ActionName = "delete_by_date"
	ActionUpdateEvent       ActionName = "update_event"
	ActionQueryEvents       ActionName = "query_events"
	ActionAdvancedQuery     ActionName = "advanced_query"
	ActionMarkTeacherAbsent ActionName = "mark_teacher_absent"
	ActionSendNotification  ActionName = "send_notification"
	ActionGeneralChat       ActionName = "general_chat"
)

var validActions = map[ActionName]bool{
	ActionCreateEvent: true, ActionDeleteEvent: true, ActionDeleteByDate: true,
	ActionUpdateEvent: true, ActionQueryEvents: true, ActionAdvancedQuery: true,
	ActionMarkTeacherAbsent: true, ActionSendNotification: true,
	ActionGeneralChat: true,
}

// IsValidAction reports whether name belongs to the closed action set.
func IsValidAction(name ActionName) bool {
	return validActions[name]
}

// Timeframe is a named relative date window resolved against "now" at
// dispatch time.
type Timeframe string

const (
	TimeframeToday       Timeframe = "today"
	TimeframeTomorrow    Timeframe = "tomorrow"
	TimeframeThisWeek    Timeframe = "this_week"
	TimeframeThisMonth   Timeframe = "this_month"
	TimeframeNext3Months Timeframe = "next_3_months"
	TimeframeUpcoming    Timeframe = "upcoming"
	TimeframePast        Timeframe = "past"
)

// Args is the closed union of per-action argument shapes. Each action name
// has exactly one Args type; required-versus-optional is enforced by the
// extractors before a descriptor is emitted, so a well-formed Action never
// carries fields outside its schema.
type Args interface {
	isArgs()
}

// CreateEventArgs carries the fields for create_event. Title, Date and Time
// are required; Location defaults to "TBD" when the utterance omits a venue.
type CreateEventArgs struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// DeleteEventArgs identifies a single event to delete, by ID or title.
type DeleteEventArgs struct {
	EventID    string `json:"event_id,omitempty"`
	EventTitle string `json:"event_title,omitempty"`
}

// DeleteByDateArgs deletes events by a single date bound. Exactly one of the
// three fields is set.
type DeleteByDateArgs struct {
	OnDate     string `json:"on_date,omitempty"`
	BeforeDate string `json:"before_date,omitempty"`
	AfterDate  string `json:"after_date,omitempty"`
}

// EventUpdates is the sparse patch half of update_event. At least one field
// must be present for the descriptor to be actionable.
type EventUpdates struct {
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

// IsZero reports whether the patch carries no updates.
func (u EventUpdates) IsZero() bool {
	return u == EventUpdates{}
}

// UpdateEventArgs carries the target event plus its sparse patch.
type UpdateEventArgs struct {
	EventID    string       `json:"event_id,omitempty"`
	EventTitle string       `json:"event_title,omitempty"`
	Updates    EventUpdates `json:"updates"`
}

// QueryEventsArgs is the simple timeframe/location/search query shape.
type QueryEventsArgs struct {
	Timeframe Timeframe `json:"timeframe,omitempty"`
	Location  string    `json:"location,omitempty"`
	Search    string    `json:"search,omitempty"`
}

// AdvancedQueryArgs adds explicit date-range filters, sorting and limits.
// When a date-range filter is present it takes precedence over Timeframe.
type AdvancedQueryArgs struct {
	Timeframe    Timeframe `json:"timeframe,omitempty"`
	BeforeDate   string    `json:"before_date,omitempty"`
	AfterDate    string    `json:"after_date,omitempty"`
	BetweenStart string    `json:"between_start,omitempty"`
	BetweenEnd   string    `json:"between_end,omitempty"`
	Location     string    `json:"location,omitempty"`
	Search       string    `json:"search,omitempty"`
	SortBy       string    `json:"sort_by,omitempty"`
	SortOrder    string    `json:"sort_order,omitempty"`
	Limit        int       `json:"limit,omitempty"`
}

// MarkTeacherAbsentArgs records a faculty absence for a date.
type MarkTeacherAbsentArgs struct {
	TeacherName string `json:"teacher_name"`
	Date        string `json:"date"`
}

// SendNotificationArgs carries an announcement for a recipient group.
type SendNotificationArgs struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// GeneralChatArgs carries a conversational reply.
type GeneralChatArgs struct {
	Reply string `json:"reply"`
}

func (CreateEventArgs) isArgs()       {}
func (DeleteEventArgs) isArgs()       {}
func (DeleteByDateArgs) isArgs()      {}
func (UpdateEventArgs) isArgs()       {}
func (QueryEventsArgs) isArgs()       {}
func (AdvancedQueryArgs) isArgs()     {}
func (MarkTeacherAbsentArgs) isArgs() {}
func (SendNotificationArgs) isArgs()  {}
func (GeneralChatArgs) isArgs()       {}

// Action is the descriptor handed to the dispatcher: an action name plus its
// typed arguments. Descriptors are created fresh per utterance and never
// mutated afterwards.
type Action struct {
	Name ActionName `json:"name"`
	Args Args       `json:"args"`
}

func chatAction(reply string) *Action {
	return &Action{Name: ActionGeneralChat, Args: GeneralChatArgs{Reply: reply}}
}
