package interpreter

import "time"

// extract runs the slot extractor for the classified category. Extractors are
// never cross-invoked: the classifier's decision is authoritative, and a nil
// result means the category matched but required slots could not be filled.
func extract(cat Category, utterance string, now time.Time) *Action {
	switch cat {
	case CategoryDelete:
		return extractDelete(utterance, now)
	case CategoryUpdate:
		return extractUpdate(utterance, now)
	case CategoryQuery:
		return extractQuery(utterance, now)
	case CategoryCreate:
		return extractCreate(utterance, now)
	case CategoryFaculty:
		return extractFaculty(utterance, now)
	case CategoryNotification:
		return extractNotification(utterance)
	default:
		return nil
	}
}
