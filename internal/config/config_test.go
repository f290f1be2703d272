// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupWithMissingFileKeepsDefaults(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	Setup()
	assert.Equal(t, 6, Settings.Search.DefaultDepth)
	assert.Equal(t, 8, Settings.Search.QuiescenceDepth)
	assert.Equal(t, 4, Settings.Log.LogLevel)
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Settings.Search.DefaultDepth = 9
	Setup() // must not re-read and clobber
	assert.Equal(t, 9, Settings.Search.DefaultDepth)
}
