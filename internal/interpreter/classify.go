package interpreter

import (
	"regexp"
	"strings"
)

// Category is the coarse intent bucket an utterance falls into.
type Category string

const (
	CategoryDelete       Category = "delete"
	CategoryUpdate       Category = "update"
	CategoryQuery        Category = "query"
	CategoryCreate       Category = "create"
	CategoryFaculty      Category = "faculty"
	CategoryNotification Category = "notification"
	CategoryChat         Category = "chat"
)

type categoryRule struct {
	Category Category
	Trigger  *regexp.Regexp
}

// classificationOrder is the priority table for intent classification.
// Order is policy, not accident: delete and update come before create so
// that verbs like "reschedule" or "change" are not misread as creation, and
// query triggers come before create so look-ups ("show events...") are not
// mistaken for creation requests. The first matching rule wins.
var classificationOrder = []categoryRule{
	{CategoryDelete, regexp.MustCompile(`\b(?:delete|remove|cancel)\b`)},
	{CategoryUpdate, regexp.MustCompile(`\b(?:update|change|modify|rename|reschedule|move)\b`)},
	{CategoryQuery, regexp.MustCompile(`\b(?:show|list|get|find|search|what|display|view|how many|count|tell me)\b|\bevents?\s+(?:before|after|on|between|in)\b`)},
	{CategoryCreate, regexp.MustCompile(`\b(?:create|add|schedule|organize|plan)\b`)},
	{CategoryFaculty, regexp.MustCompile(`\b(?:absent|mark|teacher|faculty|professor)\b`)},
	{CategoryNotification, regexp.MustCompile(`\b(?:notify|announce|send|broadcast|alert)\b`)},
}

// Classify selects exactly one category for the utterance by walking the
// priority table. CategoryChat is the total fallback; classification never
// fails to produce a result.
func Classify(utterance string) Category {
	lower := strings.ToLower(utterance)
	for _, rule := range classificationOrder {
		if rule.Trigger.MatchString(lower) {
			return rule.Category
		}
	}
	return CategoryChat
}
