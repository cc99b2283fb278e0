//go:build linux

package render

import (
	"context"
	"errors"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// FBPreview shows images on a Linux framebuffer device.
type FBPreview struct {
	Device string
	Logger logger

	fbDev *fb.Device
}

var _ Preview = (*FBPreview)(nil)

func NewFBPreview(device string) *FBPreview {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBPreview{Device: device}
}

func (p *FBPreview) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dev, err := fb.Open(p.Device)
	if err != nil {
		return err
	}
	p.fbDev = dev
	if p.Logger != nil {
		bounds := dev.Bounds()
		p.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", p.Device, bounds.Dx(), bounds.Dy())
	}
	return nil
}

func (p *FBPreview) Show(img image.Image) error {
	if p.fbDev == nil {
		return errors.New("framebuffer not open")
	}
	blit(p.fbDev, img)
	if p.Logger != nil {
		p.Logger.Infof("fb", "blit done, src=%dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

func (p *FBPreview) Stop() error {
	if p.fbDev == nil {
		return nil
	}
	p.fbDev.Close()
	p.fbDev = nil
	return nil
}
