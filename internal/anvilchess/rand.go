package anvilchess

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Rand is the randomness the rules consume: conversion draws and item
// placement. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// SeededRand is a deterministic Rand that can also feed piece IDs, so a
// seeded game reproduces the same identity tokens.
type SeededRand struct {
	*rand.Rand
	src *rand.ChaCha8
}

func NewRand(seed uint64) *SeededRand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	return &SeededRand{Rand: rand.New(src), src: src}
}

func (r *SeededRand) Read(p []byte) (int, error) { return r.src.Read(p) }

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// noDraw fails every probability draw; simulations use it.
type noDraw struct{}

func (noDraw) IntN(int) int     { return 0 }
func (noDraw) Float64() float64 { return 1 }

// newPieceID draws the identity token from rng when it can serve bytes.
func newPieceID(rng Rand) uuid.UUID {
	if r, ok := rng.(io.Reader); ok {
		if id, err := uuid.NewRandomFromReader(r); err == nil {
			return id
		}
	}
	return uuid.New()
}
