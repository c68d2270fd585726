package interpreter

// invalidRequestReply is returned for empty or blank input, before
// classification runs.
const invalidRequestReply = "Invalid request: I need some text to work with. " +
	"Try \"show events this week\" or \"create AI Workshop tomorrow at 3 PM in Lab 204\"."

// helpReply enumerates the supported command shapes. It is the deterministic
// terminal of the resolution state machine.
const helpReply = `I'm Jarvis, your campus assistant. I can help with:

Events:
  create AI Workshop tomorrow at 3 PM in Lab 204
  show events in next 3 months
  events before 2026 / events between 5 Jan and 20 Jan
  update Hackathon name to Hacknight
  delete AI Workshop / delete events on 5 Jan

Faculty:
  mark Dr. Sharma absent today

Notifications:
  notify all students about the exam schedule`
