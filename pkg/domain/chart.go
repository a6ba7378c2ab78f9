package domain

import "time"

// Chart is the persisted form of a hierarchy: a named tree snapshot.
type Chart struct {
	ID        string    `json:"id" yaml:"id"`
	Root      *Node     `json:"root,omitempty" yaml:"root,omitempty"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// Sealed holds the encrypted chart when a store encrypts at rest.
	// Root is nil in that case.
	Sealed string `json:"sealed,omitempty" yaml:"sealed,omitempty"`
}

// Clone returns a deep copy so stores never share nodes with their callers.
func (c *Chart) Clone() *Chart {
	if c == nil {
		return nil
	}
	return &Chart{
		ID:        c.ID,
		Root:      c.Root.Clone(),
		UpdatedAt: c.UpdatedAt,
		Sealed:    c.Sealed,
	}
}
