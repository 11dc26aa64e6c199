package contact

import (
	"testing"

	"estatehub/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		name     string
		in       ClassificationInput
		expected models.Priority
	}{
		{"emergency beats caller value", ClassificationInput{Message: "Water EMERGENCY in unit", Priority: models.PriorityLow}, models.PriorityUrgent},
		{"urgent wins over high", ClassificationInput{Message: "important and urgent"}, models.PriorityUrgent},
		{"high keyword", ClassificationInput{Message: "please reply soon"}, models.PriorityHigh},
		{"subject is inspected", ClassificationInput{Message: "hello there friend", Subject: "ASAP"}, models.PriorityUrgent},
		{"caller value kept", ClassificationInput{Message: "just browsing", Priority: models.PriorityLow}, models.PriorityLow},
		{"default medium", ClassificationInput{Message: "just browsing"}, models.PriorityMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.in).Priority)
		})
	}
}

func TestClassifyTags(t *testing.T) {
	got := Classify(ClassificationInput{Message: "This is urgent, I need info about financing asap"})
	assert.Equal(t, models.PriorityUrgent, got.Priority)
	assert.Contains(t, got.Tags, "financing")
	assert.NotContains(t, got.Tags, "viewing-request")

	got = Classify(ClassificationInput{
		Message: "Can I visit for a viewing? What is the price and do you offer a mortgage for investment buyers?",
		Tags:    []string{"vip", "financing", "vip"},
	})
	assert.Equal(t, []string{"vip", "financing", "viewing-request", "pricing-inquiry", "investment"}, got.Tags)
}

func TestClassifyIsIdempotent(t *testing.T) {
	in := ClassificationInput{Message: "What does the viewing cost?", Subject: "Visit"}
	first := Classify(in)
	second := Classify(ClassificationInput{Message: in.Message, Subject: in.Subject, Priority: first.Priority, Tags: first.Tags})
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"viewing-request", "pricing-inquiry"}, first.Tags)
}
