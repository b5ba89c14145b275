// Package media models the images, videos and embedded frames attached to
// portfolio entries, and the carousel that steps through them.
package media

import (
	"strings"

	"github.com/pkg/errors"
)

// Type discriminates a media Item.
type Type string

const (
	TypeImage  Type = "image"
	TypeVideo  Type = "video"
	TypeIframe Type = "iframe"
)

const (
	// DefaultVideoMIMEType is used when a video item declares none.
	DefaultVideoMIMEType = "video/mp4"
	// DefaultIframeAllow is the permissions string for embeds without one.
	DefaultIframeAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
)

// Item is one entry of a media list. Poster and MIMEType apply to videos,
// Allow to iframes.
type Item struct {
	Type     Type   `json:"type" yaml:"type"`
	Src      string `json:"src" yaml:"src"`
	Alt      string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Caption  string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Poster   string `json:"poster,omitempty" yaml:"poster,omitempty"`
	MIMEType string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Allow    string `json:"allow,omitempty" yaml:"allow,omitempty"`
}

// Validate checks the discriminant and source.
func (it Item) Validate() error {
	switch it.Type {
	case TypeImage, TypeVideo, TypeIframe:
	default:
		return errors.Errorf("unknown media type %q", it.Type)
	}
	if strings.TrimSpace(it.Src) == "" {
		return errors.Errorf("%s media has empty src", it.Type)
	}
	return nil
}

// Label is the caption, falling back to the alt text.
func (it Item) Label() string {
	if it.Caption != "" {
		return it.Caption
	}
	return it.Alt
}

// VideoMIMEType returns the declared MIME type or the default.
func (it Item) VideoMIMEType() string {
	if it.MIMEType == "" {
		return DefaultVideoMIMEType
	}
	return it.MIMEType
}

// IframeAllow returns the declared permissions or the default.
func (it Item) IframeAllow() string {
	if it.Allow == "" {
		return DefaultIframeAllow
	}
	return it.Allow
}

func (it Item) IsImage() bool  { return it.Type == TypeImage }
func (it Item) IsVideo() bool  { return it.Type == TypeVideo }
func (it Item) IsIframe() bool { return it.Type == TypeIframe }
