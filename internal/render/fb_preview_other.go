//go:build !linux

package render

import (
	"context"
	"errors"
	"image"
)

// ErrPreviewUnsupported is returned on platforms without a Linux framebuffer.
var ErrPreviewUnsupported = errors.New("framebuffer preview is only supported on linux")

type FBPreview struct {
	Device string
	Logger logger
}

var _ Preview = (*FBPreview)(nil)

func NewFBPreview(device string) *FBPreview {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBPreview{Device: device}
}

func (p *FBPreview) Start(ctx context.Context) error { return ErrPreviewUnsupported }
func (p *FBPreview) Show(img image.Image) error      { return ErrPreviewUnsupported }
func (p *FBPreview) Stop() error                     { return nil }
