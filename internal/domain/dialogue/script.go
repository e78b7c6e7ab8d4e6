// Package dialogue models the scripted conversation of the dialogue task:
// the fetched script, the precomputed steps and the forward-only cursor.
package dialogue

import (
	"encoding/json"
	"fmt"
	"io"
)

// Side is the screen side a speaker is shown on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Line is one raw script line.
type Line struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Emoji names an inline emoji image.
type Emoji struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Avatar names a speaker image and the side the speaker stands on.
type Avatar struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position Side   `json:"position"`
}

// Script is the remote dialogue document.
type Script struct {
	Dialogue []Line   `json:"dialogue"`
	Emojies  []Emoji  `json:"emojies"`
	Avatars  []Avatar `json:"avatars"`
}

// Decode parses a script from JSON.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &s, nil
}

// AssetKind distinguishes avatar and emoji images.
type AssetKind int

const (
	AssetAvatar AssetKind = iota
	AssetEmoji
)

// Asset is one image referenced by the script.
type Asset struct {
	Kind AssetKind
	Name string
	URL  string
}

// Assets lists every image the script references, avatars first.
func (s *Script) Assets() []Asset {
	assets := make([]Asset, 0, len(s.Avatars)+len(s.Emojies))
	for _, a := range s.Avatars {
		assets = append(assets, Asset{Kind: AssetAvatar, Name: a.Name, URL: a.URL})
	}
	for _, e := range s.Emojies {
		assets = append(assets, Asset{Kind: AssetEmoji, Name: e.Name, URL: e.URL})
	}
	return assets
}

// SideOf resolves a speaker to a side, defaulting to left.
func (s *Script) SideOf(name string) Side {
	for _, a := range s.Avatars {
		if a.Name != name {
			continue
		}
		if a.Position == SideRight {
			return SideRight
		}
		return SideLeft
	}
	return SideLeft
}
