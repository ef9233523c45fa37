package event

import "testing"

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"navigate.next", "navigate.next", true},
		{"navigate.next", "navigate.previous", false},
		{"navigate.next", "navigate.*", true},
		{"navigate.next", "*.next", true},
		{"navigate.next", "*", false},
		{"navigate.next", "**", true},
		{"mode.change", "navigate.**", false},
		{"navigate.next", "navigate.**", true},
		{"navigate", "navigate.**", true},
		{"navigate.next", "navigate", false},
		{"a.b.c", "a.*.c", true},
		{"a.b.c", "**.c", true},
	}

	for _, tt := range tests {
		if got := tt.topic.Matches(tt.pattern); got != tt.want {
			t.Errorf("Topic(%q).Matches(%q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
		}
	}
}

func TestTopicIsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"", false},
		{"mode", true},
		{"mode.change", true},
		{".mode", false},
		{"mode.", false},
		{"mode..change", false},
		{TopicAll, true},
	}

	for _, tt := range tests {
		if got := tt.topic.IsValid(); got != tt.want {
			t.Errorf("Topic(%q).IsValid() = %v, want %v", tt.topic, got, tt.want)
		}
	}
}
