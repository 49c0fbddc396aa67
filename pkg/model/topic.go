package model

// Topic enumerates the discriminant values that activate a conditional group.
// TopicNone covers empty and unrecognised input.
type Topic int

const (
	TopicNone Topic = iota
	TopicTechnology
	TopicHealth
	TopicEducation
)

var topicNames = map[Topic]string{
	TopicTechnology: "Technology",
	TopicHealth:     "Health",
	TopicEducation:  "Education",
}

// Topics returns the enumerated topics in display order.
func Topics() []Topic {
	return []Topic{TopicTechnology, TopicHealth, TopicEducation}
}

// ParseTopic maps a raw discriminant value onto a Topic. Matching is exact,
// so "technology" is not a valid topic.
func ParseTopic(raw string) (Topic, bool) {
	for topic, name := range topicNames {
		if name == raw {
			return topic, true
		}
	}
	return TopicNone, false
}

// String returns the wire value of the topic, "" for TopicNone.
func (t Topic) String() string {
	return topicNames[t]
}

// Valid reports whether t is one of the enumerated topics.
func (t Topic) Valid() bool {
	_, ok := topicNames[t]
	return ok
}
