// Package challenge serves the pages of the degraded usage API: it maps page
// numbers to difficulty levels, injects faults and streams generated records.
package challenge

import "github.com/usagechallenge/challenge/internal/procedural"

// PagesPerLevel is the number of consecutive pages served at one difficulty.
const PagesPerLevel = 10

// LastLevel is the hardest difficulty reachable by page number. Pages past it
// complete the challenge.
const LastLevel = 7

// Page sizes in records.
const (
	DefaultPageSize = 10
	BloatedPageSize = 1000
)

// CompletionMessage is the body served once every level has been passed.
const CompletionMessage = "Congratulation you finished the challenge"

// Level is one row of the difficulty table.
type Level struct {
	Difficulty int    `json:"difficulty"`
	FirstPage  uint64 `json:"first_page"`
	LastPage   uint64 `json:"last_page"`
	PageSize   int    `json:"page_size"`
	Behavior   string `json:"behavior"`
}

var behaviors = [...]string{
	1: "well structured records",
	2: "randomized key order",
	3: "dropped fields and blank emails",
	4: "random latency and error statuses",
	5: "epoch and RFC 2822 timestamps",
	6: "bloated profile pictures",
	7: "oversized pages",
}

// Levels returns the difficulty table in page order.
func Levels() []Level {
	levels := make([]Level, 0, LastLevel)
	for d := procedural.MinDifficulty; d <= LastLevel; d++ {
		first := uint64(d-1) * PagesPerLevel
		levels = append(levels, Level{
			Difficulty: d,
			FirstPage:  first,
			LastPage:   first + PagesPerLevel - 1,
			PageSize:   PageSize(d),
			Behavior:   behaviors[d],
		})
	}
	return levels
}

// DifficultyForPage maps a page number to its difficulty. Every page past the
// last level maps to procedural.Complete.
func DifficultyForPage(pageNo uint64) int {
	level := pageNo/PagesPerLevel + 1
	if level > LastLevel {
		return procedural.Complete
	}
	return int(level)
}

// PageSize returns the number of records on a page of the given difficulty.
func PageSize(difficulty int) int {
	if difficulty >= 7 {
		return BloatedPageSize
	}
	return DefaultPageSize
}
