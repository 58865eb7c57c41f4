package aggregator

import "sort"

// Entry is a key with its occurrence count.
type Entry struct {
	Key   string
	Count int
}

// Counter is a frequency table that remembers the order in which keys were
// first seen, so rankings can break ties deterministically.
type Counter struct {
	counts    map[string]int
	firstSeen map[string]int
}

func NewCounter() *Counter {
	return &Counter{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

// Add increments the count for key.
func (c *Counter) Add(key string) {
	if _, ok := c.firstSeen[key]; !ok {
		c.firstSeen[key] = len(c.firstSeen)
	}
	c.counts[key]++
}

// Top returns at most n entries ordered by descending count. Equal counts
// keep first-seen order.
func (c *Counter) Top(n int) []Entry {
	entries := make([]Entry, 0, len(c.counts))
	for k, v := range c.counts {
		entries = append(entries, Entry{Key: k, Count: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.firstSeen[entries[i].Key] < c.firstSeen[entries[j].Key]
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
