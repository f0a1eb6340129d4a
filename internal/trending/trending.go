// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package trending loads the editorial trending dataset and presents it.
//
// Trending topics and users are reference data supplied externally in an
// editorial YAML file, not anything derived from feed activity. The
// loader reads the file into the model types; the watcher reloads it when
// the file changes so editors see updates without a restart.
package trending

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Dataset is the decoded editorial file.
type Dataset struct {
	Topics []model.TrendingTopic `yaml:"topics"`
	Users  []model.TrendingUser  `yaml:"users"`
}

// LoadFile reads and decodes the editorial YAML file.
//
// # Inputs
//
//   - path: File to read.
//
// # Outputs
//
//   - Dataset: The decoded topics and users.
//   - error: Non-nil if the file cannot be read or parsed.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read trending file: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse trending file %s: %w", path, err)
	}
	return ds, nil
}

// =============================================================================
// Presentation Helpers
// =============================================================================

// FormatCount renders a topic count the way the sidebar shows it:
// thousands collapse to one decimal with a K suffix.
func FormatCount(count int) string {
	if count >= 1000 {
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}

// FormatGrowth renders a growth percentage with an explicit leading sign
// for positive values.
func FormatGrowth(growth float64) string {
	if growth > 0 {
		return fmt.Sprintf("+%.1f%%", growth)
	}
	return fmt.Sprintf("%.1f%%", growth)
}

// Localize derives the local-context variant of the topics: names gain a
// " (Local)" suffix unless they already mention "local", and counts are
// scaled down to simulate the smaller local audience.
func Localize(topics []model.TrendingTopic) []model.TrendingTopic {
	out := make([]model.TrendingTopic, len(topics))
	for i, t := range topics {
		local := t
		if !containsLocal(t.Name) {
			local.Name = t.Name + " (Local)"
		}
		local.Count = int(math.Floor(float64(t.Count) * 0.3))
		out[i] = local
	}
	return out
}

// containsLocal matches the raw name case-sensitively; "Local" in a
// title still gets the suffix.
func containsLocal(name string) bool {
	return strings.Contains(name, "local")
}
