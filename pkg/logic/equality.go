package logic

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"io"
	"slices"
)

// Equal reports whether a and b are structurally equal: the same variant with
// recursively equal fields. Conjunct and disjunct order is part of a
// sentence's identity even though the connectives commute semantically.
func Equal(a, b Sentence) bool {
	switch a := a.(type) {
	case symbol:
		b, ok := b.(symbol)
		return ok && a.name == b.name
	case not:
		b, ok := b.(not)
		return ok && Equal(a.operand, b.operand)
	case and:
		b, ok := b.(and)
		return ok && slices.EqualFunc(a.conjuncts, b.conjuncts, Equal)
	case or:
		b, ok := b.(or)
		return ok && slices.EqualFunc(a.disjuncts, b.disjuncts, Equal)
	case implication:
		b, ok := b.(implication)
		return ok && Equal(a.antecedent, b.antecedent) && Equal(a.consequent, b.consequent)
	}
	return false
}

// Fingerprint returns an identity digest consistent with Equal: structurally
// equal sentences share a fingerprint, so sentences can key maps and sets.
func Fingerprint(s Sentence) uint64 {
	hasher := fnv.New64a()
	s.fingerprint(hasher)
	return hasher.Sum64()
}

// Tags keep the hashed encoding prefix-unambiguous: every variant opens with
// its own tag, variadic variants close with tagEnd, and symbol names carry a
// length prefix.
const (
	tagSymbol byte = iota + 1
	tagNot
	tagAnd
	tagOr
	tagImplication
	tagEnd
)

func (s symbol) fingerprint(hasher hash.Hash64) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(s.name)))
	hasher.Write([]byte{tagSymbol})
	hasher.Write(length[:])
	io.WriteString(hasher, s.name)
}

func (s not) fingerprint(hasher hash.Hash64) {
	hasher.Write([]byte{tagNot})
	s.operand.fingerprint(hasher)
}

func (s and) fingerprint(hasher hash.Hash64) {
	hasher.Write([]byte{tagAnd})
	for _, conjunct := range s.conjuncts {
		conjunct.fingerprint(hasher)
	}
	hasher.Write([]byte{tagEnd})
}

func (s or) fingerprint(hasher hash.Hash64) {
	hasher.Write([]byte{tagOr})
	for _, disjunct := range s.disjuncts {
		disjunct.fingerprint(hasher)
	}
	hasher.Write([]byte{tagEnd})
}

func (s implication) fingerprint(hasher hash.Hash64) {
	hasher.Write([]byte{tagImplication})
	s.antecedent.fingerprint(hasher)
	s.consequent.fingerprint(hasher)
}
