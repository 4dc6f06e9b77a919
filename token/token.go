// Package token resolves a fixed array of base parsers by longest
// match at each input position, caching the result per position so
// that many token parsers probing the same offset pay for one
// tokenization.
//
// A Set and the parsers it hands out are tied to a single parse at a
// time, because the cache is keyed by position into that parse's
// input. Call Flush before reusing a Set for another parse.
package token

import (
	"fmt"

	"github.com/ncellar/autumn4/parse"
)

// result is one cache entry: the winning base parser, the end position
// of its match and the side effects it journaled. none marks positions
// where no base parser matched.
type result struct {
	parser int
	end    int
	delta  []parse.SideEffect
}

var none = &result{parser: -1, end: -1}

// Set is a collection of base parsers treated as mutually exclusive by
// longest match, with a position-indexed result cache.
type Set struct {
	parsers []parse.Parser

	// Open-addressed Robin-Hood table. Each slot of cache packs
	// (position+1) in the low 32 bits and the entry's displacement
	// from its home slot in the high 32; a zero low word means empty.
	// results holds the entry for the same slot index.
	cache           []uint64
	results         []*result
	occupied        int
	maxDisplacement uint64
}

const initialCacheSize = 1024

// NewSet creates a token set over the given base parsers. The bases
// are tried in the given order and earlier bases win end-position
// ties.
func NewSet(parsers ...parse.Parser) *Set {
	return &Set{
		parsers: parsers,
		cache:   make([]uint64, initialCacheSize),
		results: make([]*result, initialCacheSize),
	}
}

// Parsers returns a copy of the base parser array.
func (s *Set) Parsers() []parse.Parser {
	out := make([]parse.Parser, len(s.parsers))
	copy(out, s.parsers)
	return out
}

// Len returns the number of base parsers.
func (s *Set) Len() int {
	return len(s.parsers)
}

// Flush empties the cache, allowing the set to be reused for a new
// parse.
func (s *Set) Flush() {
	s.cache = make([]uint64, initialCacheSize)
	s.results = make([]*result, initialCacheSize)
	s.occupied = 0
	s.maxDisplacement = 0
}

// TokenParser returns the recognizer for the given base parser, which
// must be one of the parsers the set was constructed with.
func (s *Set) TokenParser(base parse.Parser) *Parser {
	for i, q := range s.parsers {
		if q == base {
			return &Parser{set: s, target: i, base: base}
		}
	}
	panic(fmt.Sprintf("token: parser %v is not a base parser of this set", base))
}

// TokenChoice returns a recognizer that accepts the token at the
// current position if it was produced by any of the given base
// parsers, all of which must belong to the set.
func (s *Set) TokenChoice(bases ...parse.Parser) *Choice {
	targets := make([]int, len(bases))
outer:
	for j, base := range bases {
		for i, q := range s.parsers {
			if q == base {
				targets[j] = i
				continue outer
			}
		}
		panic(fmt.Sprintf("token: parser %v is not a base parser of this set", base))
	}
	return &Choice{set: s, targets: targets, bases: bases}
}

// insert places (pos, res) into the table, Robin-Hood style: whenever
// the probed resident sits closer to its home slot than the incoming
// entry, they swap and the probe continues with the displaced
// resident. Assumes the table has a free slot. Does not update
// occupied.
func (s *Set) insert(pos int, res *result) {
	i := pos % len(s.cache)
	var displacement uint64

	for uint32(s.cache[i]) != 0 {
		d := s.cache[i] >> 32

		if d < displacement {
			pos2 := int(uint32(s.cache[i]) - 1)
			res2 := s.results[i]

			s.cache[i] = uint64(pos+1) | displacement<<32
			s.results[i] = res

			if displacement > s.maxDisplacement {
				s.maxDisplacement = displacement
			}

			pos = pos2
			res = res2
			displacement = d
		}

		displacement++
		if i++; i == len(s.cache) {
			i = 0
		}
	}

	if displacement > s.maxDisplacement {
		s.maxDisplacement = displacement
	}
	s.cache[i] = uint64(pos+1) | displacement<<32
	s.results[i] = res
}

// store inserts (pos, res) and doubles the table when occupancy
// exceeds 0.8, re-inserting every live entry.
func (s *Set) store(pos int, res *result) {
	s.insert(pos, res)
	s.occupied++

	if float64(s.occupied)/float64(len(s.cache)) > 0.8 {
		oldCache := s.cache
		oldResults := s.results

		s.cache = make([]uint64, 2*len(oldCache))
		s.results = make([]*result, 2*len(oldResults))

		for j, w := range oldCache {
			if uint32(w) != 0 {
				s.insert(int(uint32(w)-1), oldResults[j])
			}
		}
	}
}

// get returns the cached result for pos, or nil when the position has
// not been tokenized yet. The probe stops at an empty slot or once the
// probe distance exceeds the maximum displacement of any live entry,
// which bounds the scan.
func (s *Set) get(pos int) *result {
	i := pos % len(s.cache)
	p := uint32(s.cache[i])
	var d uint64

	for p != uint32(pos+1) && p != 0 && d <= s.maxDisplacement {
		if i++; i == len(s.cache) {
			i = 0
		}
		p = uint32(s.cache[i])
		d++
	}

	if p == uint32(pos+1) {
		return s.results[i]
	}
	return nil
}

// fill runs longest-match resolution at the current position and
// caches the outcome, leaving the parse state as it found it. Assumes
// no result for the position is cached yet.
func (s *Set) fill(p *parse.Parse) *result {
	pos0 := p.Pos
	log0 := p.LogSize()

	longest := -1
	maxPos := pos0
	var delta []parse.SideEffect

	for i, base := range s.parsers {
		if base.Parse(p) {
			if p.Pos > maxPos {
				maxPos = p.Pos
				delta = p.Delta(log0)
				longest = i
			}
			p.Pos = pos0
			p.Rollback(log0)
		}
	}

	res := none
	if longest >= 0 {
		res = &result{parser: longest, end: maxPos, delta: delta}
	}
	s.store(pos0, res)
	return res
}

// lookup returns the token result at the current position, consulting
// the cache and filling it on a miss.
func (s *Set) lookup(p *parse.Parse) *result {
	if len(s.parsers) == 0 {
		panic("token: set has no base parsers")
	}
	res := s.get(p.Pos)
	if res == nil {
		res = s.fill(p)
	}
	return res
}

// accept commits the cached result: the cursor jumps to the token's
// end and the token's side effects are replayed through the journal.
func accept(p *parse.Parse, res *result) {
	p.Pos = res.end
	for _, e := range res.delta {
		p.Apply(e)
	}
}

// parseToken matches the token at the current position iff it was
// produced by the base parser at index target.
func (s *Set) parseToken(p *parse.Parse, target int) bool {
	res := s.lookup(p)
	if res == none || res.parser != target {
		return false
	}
	accept(p, res)
	return true
}

// parseTokenChoice matches the token at the current position iff it
// was produced by any of the base parsers at the target indices.
func (s *Set) parseTokenChoice(p *parse.Parse, targets []int) bool {
	res := s.lookup(p)
	if res == none {
		return false
	}
	for _, target := range targets {
		if res.parser == target {
			accept(p, res)
			return true
		}
	}
	return false
}
