// Copyright 2026 Zipsea, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPricingData(t *testing.T) {
	tmpDir := t.TempDir()

	pricingPath := filepath.Join(tmpDir, "pricing.txt")
	content := "Category: 2D - Ocean View Balcony GTY\nTotal: $1,449.00 | $1,449.00 | $2,898.00\n"
	require.NoError(t, os.WriteFile(pricingPath, []byte(content), 0644))

	got, err := readPricingData(pricingPath)
	require.NoError(t, err, "reading an existing pricing file should succeed")
	assert.Equal(t, content, got)
}

func TestReadPricingData_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := readPricingData(filepath.Join(tmpDir, "nope.txt"))
	require.Error(t, err, "missing pricing file should be an error")
	assert.Contains(t, err.Error(), "reading pricing file")
}
