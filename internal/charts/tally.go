// Package charts aggregates sentiment labels and renders them with go-echarts.
package charts

import (
	"sort"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"
)

// Colors is the fixed palette per label
var Colors = map[models.SentimentLabel]string{
	models.Positive: "#4C78A3",
	models.Neutral:  "#BAB0AC",
	models.Negative: "#E45756",
	models.Unknown:  "#9D755D",
}

// Tally counts records per sentiment label. Labels never seen are absent.
type Tally map[models.SentimentLabel]int

// NewTally counts the labels of records
func NewTally(records []models.CommentRecord) Tally {
	t := make(Tally)
	for _, r := range records {
		t[r.Sentiment]++
	}
	return t
}

// Total is the number of counted records
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Entries lists labels by descending count, ties broken by display order
func (t Tally) Entries() []models.TallyEntry {
	entries := make([]models.TallyEntry, 0, len(t))
	for label, n := range t {
		entries = append(entries, models.TallyEntry{Label: label, Count: n})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		ri, rj := labelRank(entries[i].Label), labelRank(entries[j].Label)
		if ri != rj {
			return ri < rj
		}
		return entries[i].Label < entries[j].Label
	})

	return entries
}

func labelRank(l models.SentimentLabel) int {
	for i, known := range models.AllLabels {
		if known == l {
			return i
		}
	}
	return len(models.AllLabels)
}
