// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"encoding/json"
	"fmt"
	"io"
)

// Metadata is the public verification record produced by Split. It contains
// no secret material and must be kept (separately from the shares) for
// Verify and Recover: without it, shares can still be combined but forged
// shares can no longer be detected.
type Metadata struct {
	// Needed is the threshold: the number of shares required to recover.
	Needed int `json:"needed"`

	// Salt is the caller-supplied value that domain-separates this split
	// from other splits of the same secret. It is public.
	Salt string `json:"salt"`

	// V holds one share commitment digest per share, in split order;
	// V[i-1] binds the share with index i.
	V [][]byte `json:"v"`

	// C is the commitment to the secret itself, chunked into Needed
	// pieces.
	C [][]byte `json:"c"`
}

// Shares returns the number of shares the split produced.
func (m *Metadata) Shares() int {
	return len(m.V)
}

func (m *Metadata) validate() error {
	if m.Needed < 2 {
		return fmt.Errorf("metadata needs %d shares, minimum is 2", m.Needed)
	}
	if len(m.V) < m.Needed {
		return fmt.Errorf("metadata has %d share digests, fewer than the %d needed", len(m.V), m.Needed)
	}
	if len(m.V) > maxShares {
		return fmt.Errorf("metadata has %d share digests, maximum is %d", len(m.V), maxShares)
	}
	if len(m.C) != m.Needed {
		return fmt.Errorf("metadata has %d secret commitment chunks, want %d", len(m.C), m.Needed)
	}
	for i, d := range m.V {
		if len(d) != digestLen {
			return fmt.Errorf("share digest %d has %d bytes, want %d", i+1, len(d), digestLen)
		}
	}
	for i, d := range m.C {
		if len(d) != digestLen {
			return fmt.Errorf("secret commitment chunk %d has %d bytes, want %d", i+1, len(d), digestLen)
		}
	}
	return nil
}

// WriteMetadata serializes the metadata record as JSON.
func WriteMetadata(w io.Writer, m *Metadata) error {
	if err := m.validate(); err != nil {
		return fmt.Errorf("refusing to write metadata: %w", err)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("could not write metadata: %w", err)
	}
	return nil
}

// ReadMetadata parses and validates a JSON metadata record.
func ReadMetadata(r io.Reader) (*Metadata, error) {
	var m Metadata
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("could not parse metadata: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}
	return &m, nil
}
