package procedural

import (
	"errors"
	"fmt"
	"iter"

	"github.com/usagechallenge/challenge/internal/jsonv"
)

// Difficulty bounds accepted by the generator. Levels at or above Complete have
// no records.
const (
	MinDifficulty = 1
	Complete      = 9
)

// ErrDifficulty is returned for a difficulty the generator cannot serve.
var ErrDifficulty = errors.New("procedural: difficulty out of range")

// Seed derives the stream seed for a page. Distinct (difficulty, page) pairs
// collide only when pageNo overflows into the difficulty bits.
func Seed(difficulty int, pageNo uint64) uint64 {
	return (uint64(0xA) << (16 + uint(difficulty))) + pageNo
}

// Generator yields the endless, reproducible record sequence of one page.
// It is not safe for concurrent use; create one per request.
type Generator struct {
	stream     *Stream
	difficulty int
}

// NewGenerator returns the generator for (difficulty, pageNo). Two generators
// built from the same arguments yield byte-identical records.
func NewGenerator(difficulty int, pageNo uint64) (*Generator, error) {
	if difficulty < MinDifficulty || difficulty >= Complete {
		return nil, fmt.Errorf("%w: %d", ErrDifficulty, difficulty)
	}
	return &Generator{
		stream:     NewStream(Seed(difficulty, pageNo)),
		difficulty: difficulty,
	}, nil
}

// Difficulty returns the level the generator mutates for.
func (g *Generator) Difficulty() int { return g.difficulty }

// Next synthesizes and mutates the next record.
func (g *Generator) Next() (jsonv.Value, error) {
	record := SampleUsage(g.stream).Value()
	if err := Mutate(g.stream, g.difficulty, record); err != nil {
		return jsonv.Value{}, err
	}
	return record, nil
}

// Take yields the next n records. Iteration stops after the first error.
func (g *Generator) Take(n int) iter.Seq2[jsonv.Value, error] {
	return func(yield func(jsonv.Value, error) bool) {
		for range n {
			record, err := g.Next()
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}
