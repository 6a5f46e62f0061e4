package qr

import (
	"do-coupon-system/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	MinSize = 64
	MaxSize = 1024
)

var ErrEmptyContent = errs.New("qr content is empty")

// PNG renders content as a square PNG of size pixels, clamped to [MinSize, MaxSize].
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	switch {
	case size < MinSize:
		size = MinSize
	case size > MaxSize:
		size = MaxSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode qr code")
	}
	return png, nil
}
