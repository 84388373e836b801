// SPDX-License-Identifier: MIT
// Package config holds the ndlabel run configuration: a JSON file whose
// omitted fields fall back to documented defaults.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/ndlabel/ndarray"
)

// Defaults used when a field is absent.
const (
	DefaultThreshold    = 128
	DefaultConnectivity = 4
	DefaultMode         = "constant"
	DefaultBorderSize   = 1

	maxFileSize = 1 << 20
)

// RunConfig configures one labeling run. Nil fields take their defaults.
type RunConfig struct {
	Threshold       *int    `json:"threshold,omitempty"`
	Connectivity    *int    `json:"connectivity,omitempty"`
	Mode            *string `json:"mode,omitempty"`
	Invert          *bool   `json:"invert,omitempty"`
	RemoveBordering *bool   `json:"remove_bordering,omitempty"`
	BorderSize      *int    `json:"border_size,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// Defaults returns a RunConfig with every field set explicitly.
func Defaults() *RunConfig {
	return &RunConfig{
		Threshold:       ptr(DefaultThreshold),
		Connectivity:    ptr(DefaultConnectivity),
		Mode:            ptr(DefaultMode),
		Invert:          ptr(false),
		RemoveBordering: ptr(false),
		BorderSize:      ptr(DefaultBorderSize),
	}
}

// LoadRunConfig reads a RunConfig from a .json file no larger than 1 MiB and
// validates it. Fields missing from the file stay nil.
func LoadRunConfig(path string) (*RunConfig, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *RunConfig) Validate() error {
	if c.Threshold != nil && (*c.Threshold < 0 || *c.Threshold > 255) {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", *c.Threshold)
	}
	if c.Connectivity != nil && *c.Connectivity != 4 && *c.Connectivity != 8 {
		return fmt.Errorf("connectivity must be 4 or 8, got %d", *c.Connectivity)
	}
	if c.Mode != nil {
		if _, err := ndarray.ParseMode(*c.Mode); err != nil {
			return fmt.Errorf("mode: %w", err)
		}
	}
	if c.BorderSize != nil && *c.BorderSize < 0 {
		return fmt.Errorf("border_size must be non-negative, got %d", *c.BorderSize)
	}

	return nil
}

// Merge returns a copy of c with every field set in o taking precedence.
func (c *RunConfig) Merge(o *RunConfig) *RunConfig {
	out := *c
	if o == nil {
		return &out
	}
	if o.Threshold != nil {
		out.Threshold = o.Threshold
	}
	if o.Connectivity != nil {
		out.Connectivity = o.Connectivity
	}
	if o.Mode != nil {
		out.Mode = o.Mode
	}
	if o.Invert != nil {
		out.Invert = o.Invert
	}
	if o.RemoveBordering != nil {
		out.RemoveBordering = o.RemoveBordering
	}
	if o.BorderSize != nil {
		out.BorderSize = o.BorderSize
	}

	return &out
}

// GetThreshold returns the binarization threshold.
func (c *RunConfig) GetThreshold() uint8 {
	if c.Threshold == nil {
		return DefaultThreshold
	}
	return uint8(*c.Threshold)
}

// GetConnectivity returns 4 or 8.
func (c *RunConfig) GetConnectivity() int {
	if c.Connectivity == nil {
		return DefaultConnectivity
	}
	return *c.Connectivity
}

// GetMode returns the edge mode, falling back to constant on a bad name.
func (c *RunConfig) GetMode() ndarray.Mode {
	if c.Mode == nil {
		return ndarray.Constant
	}
	m, err := ndarray.ParseMode(*c.Mode)
	if err != nil {
		return ndarray.Constant
	}
	return m
}

// GetInvert reports whether dark pixels are the foreground.
func (c *RunConfig) GetInvert() bool {
	return c.Invert != nil && *c.Invert
}

// GetRemoveBordering reports whether regions touching the border are dropped.
func (c *RunConfig) GetRemoveBordering() bool {
	return c.RemoveBordering != nil && *c.RemoveBordering
}

// GetBorderSize returns the border width used by RemoveBordering.
func (c *RunConfig) GetBorderSize() int {
	if c.BorderSize == nil {
		return DefaultBorderSize
	}
	return *c.BorderSize
}
