package contact

import (
	"strings"

	"estatehub/models"
)

var (
	urgentKeywords = []string{"urgent", "asap", "immediately", "emergency"}
	highKeywords   = []string{"important", "priority", "soon", "quickly"}
)

// tagRules are checked in order and all matching tags apply.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"viewing-request", []string{"viewing", "visit"}},
	{"pricing-inquiry", []string{"price", "cost"}},
	{"financing", []string{"mortgage", "financing"}},
	{"investment", []string{"investment"}},
}

type ClassificationInput struct {
	Message  string
	Subject  string
	Priority models.Priority
	Tags     []string
}

type Classification struct {
	Priority models.Priority
	Tags     []string
}

// Classify derives priority and topic tags from the inquiry text. It is a
// pure function of its input.
func Classify(in ClassificationInput) Classification {
	text := strings.ToLower(in.Message + " " + in.Subject)

	priority := in.Priority
	switch {
	case containsAny(text, urgentKeywords):
		priority = models.PriorityUrgent
	case containsAny(text, highKeywords):
		priority = models.PriorityHigh
	case priority == "":
		priority = models.PriorityMedium
	}

	tags := make([]string, 0, len(in.Tags)+len(tagRules))
	seen := make(map[string]bool, cap(tags))
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	for _, t := range in.Tags {
		add(t)
	}
	for _, rule := range tagRules {
		if containsAny(text, rule.keywords) {
			add(rule.tag)
		}
	}
	return Classification{Priority: priority, Tags: tags}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
