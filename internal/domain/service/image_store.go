package service

import "context"

// ImageStore keeps uploaded images and returns their public URL.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}
