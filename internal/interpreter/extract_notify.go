package interpreter

import (
	"regexp"
	"strings"
)

var (
	// Recipients form a fixed closed set; anything else is not actionable.
	reNotifyRecipient = regexp.MustCompile(`(?i)(?:to|notify)\s+(all\s+students|students|faculty|staff|everyone|coordinator)\b`)
	reNotifyMessage   = regexp.MustCompile(`(?i)about\s+(.+?)(?:\.|$)`)
)

// extractNotification requires both a recognized recipient and an "about ..."
// message body.
func extractNotification(msg string) *Action {
	rm := reNotifyRecipient.FindStringSubmatch(msg)
	mm := reNotifyMessage.FindStringSubmatch(msg)
	if rm == nil || mm == nil {
		return nil
	}
	recipient := strings.TrimSpace(rm[1])
	message := strings.TrimSpace(mm[1])
	if message == "" {
		return nil
	}
	return &Action{Name: ActionSendNotification, Args: SendNotificationArgs{
		Recipient: recipient,
		Message:   message,
	}}
}
