package strenc

import (
	"strings"
)

// Stage is one key of the cascade with the schedules of its segments, in order.
// An empty key gives a stage with no schedules.
type Stage struct {
	key       string
	schedules []Schedule
}

// NewStage chunks key like plaintext and derives a schedule per segment.
// A trailing short chunk is zero padded, so any non-empty key has at least one segment.
func NewStage(key string) Stage {
	segments := Chunks(key)
	st := Stage{key: key, schedules: make([]Schedule, len(segments))}
	for i, seg := range segments {
		st.schedules[i] = NewSchedule(seg)
	}

	return st
}

// Key returns the key string the stage was built from.
func (s Stage) Key() string {
	return s.key
}

// Segments returns the number of key segments in the stage.
func (s Stage) Segments() int {
	return len(s.schedules)
}

// apply encrypts b once per segment.
func (s Stage) apply(b Block64) Block64 {
	for i := range s.schedules {
		b = Encrypt(b, &s.schedules[i])
	}

	return b
}

// Cascade is an ordered list of stages. It is immutable once built and may be
// shared between goroutines.
type Cascade struct {
	stages []Stage
}

// NewCascade builds a cascade that applies keys in the given order.
// Empty keys pass blocks through unchanged.
func NewCascade(keys ...string) *Cascade {
	c := &Cascade{stages: make([]Stage, 0, len(keys))}
	for _, k := range keys {
		c.stages = append(c.stages, NewStage(k))
	}

	return c
}

// Stages returns a copy of the cascade stages.
func (c *Cascade) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)

	return out
}

// Segments returns the number of encryptions applied to every block.
func (c *Cascade) Segments() int {
	n := 0
	for _, st := range c.stages {
		n += st.Segments()
	}

	return n
}

// EncryptBlock runs b through every stage. With no segments b is returned as is.
func (c *Cascade) EncryptBlock(b Block64) Block64 {
	for _, st := range c.stages {
		b = st.apply(b)
	}

	return b
}

// Encode chunks data into blocks, encrypts each and concatenates the hex.
// The result has 16 digits per block and is empty for empty data.
func (c *Cascade) Encode(data string) string {
	blocks := Chunks(data)
	if len(blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(blocks) * HexBlockSize)
	for _, b := range blocks {
		sb.WriteString(c.EncryptBlock(b).Hex())
	}

	return sb.String()
}

// Encode is the strEnc entry point. Pass "" for an absent key.
func Encode(data, key1, key2, key3 string) string {
	if data == "" {
		return ""
	}

	return NewCascade(key1, key2, key3).Encode(data)
}
