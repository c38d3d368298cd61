package entities

// Catalog is the immutable, ordered question bank the quiz is played over.
type Catalog struct {
	topics []Topic
	index  map[string]int
}

// NewCatalog builds a catalog from topics in display order.
// Later topics with a duplicate name are unreachable by name.
func NewCatalog(topics []Topic) *Catalog {
	c := &Catalog{
		topics: make([]Topic, len(topics)),
		index:  make(map[string]int, len(topics)),
	}
	copy(c.topics, topics)

	for i, t := range c.topics {
		if _, ok := c.index[t.Name]; !ok {
			c.index[t.Name] = i
		}
	}

	return c
}

// Topics returns topic names in display order.
func (c *Catalog) Topics() []string {
	names := make([]string, 0, len(c.topics))
	for _, t := range c.topics {
		names = append(names, t.Name)
	}
	return names
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Default returns the first topic of the catalog.
func (c *Catalog) Default() Topic {
	if len(c.topics) == 0 {
		return Topic{}
	}
	return c.topics[0]
}

// Topic looks a topic up by name.
func (c *Catalog) Topic(name string) (Topic, bool) {
	i, ok := c.index[name]
	if !ok {
		return Topic{}, false
	}
	return c.topics[i], true
}

// TopicAt returns the topic at display position i.
func (c *Catalog) TopicAt(i int) (Topic, bool) {
	if i < 0 || i >= len(c.topics) {
		return Topic{}, false
	}
	return c.topics[i], true
}

// TopicIndex returns the display position of the named topic, or -1.
func (c *Catalog) TopicIndex(name string) int {
	i, ok := c.index[name]
	if !ok {
		return -1
	}
	return i
}

// Question returns the question at position q of the named topic.
func (c *Catalog) Question(topic string, q int) (Question, bool) {
	t, ok := c.Topic(topic)
	if !ok || q < 0 || q >= t.Len() {
		return Question{}, false
	}
	return t.Questions[q], true
}
