package calib

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Load decodes and validates a calibration stored with Save.
func Load(r io.Reader) (Config, error) {
	var c Config
	if err := cbor.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("calib: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("calib: %w", err)
	}
	return c, nil
}

// Save encodes the calibration in its compact binary form.
func (c Config) Save(w io.Writer) error {
	if err := cbor.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("calib: %w", err)
	}
	return nil
}
