// Package fonts provides the built-in fonts available to badge rendering.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Builtin maps config names to embedded font data.
var Builtin = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
	"go-italic":  goitalic.TTF,
	"go-medium":  gomedium.TTF,
	"go-mono":    gomono.TTF,
}

// DefaultFont is the config name of the default built-in font.
const DefaultFont = "go-regular"

// License covers every built-in font.
const License = "Go fonts, Copyright 2016 Bigelow & Holmes Inc. Distributed under the Go project's BSD-style license; see https://go.dev/blog/go-fonts"

// Names returns the sorted list of built-in font names.
func Names() []string {
	names := make([]string, 0, len(Builtin))
	for k := range Builtin {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Load parses a built-in font by config name.
func Load(name string) (*sfnt.Font, error) {
	data, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in font %q (available: %v)", name, Names())
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in font %s: %w", name, err)
	}
	return f, nil
}

// LoadFile parses a TTF/OTF from a filesystem path. The returned name is
// the file's base name without extension.
func LoadFile(path string) (*sfnt.Font, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading font file %s: %w", path, err)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing font file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return f, name, nil
}

var defaultFont struct {
	once sync.Once
	font *sfnt.Font
	err  error
}

// Default returns the parsed default built-in font. The result is shared
// and parsed once; sfnt fonts are safe for concurrent use as long as each
// renderer owns its own buffers.
func Default() (*sfnt.Font, error) {
	defaultFont.once.Do(func() {
		defaultFont.font, defaultFont.err = Load(DefaultFont)
	})
	return defaultFont.font, defaultFont.err
}
