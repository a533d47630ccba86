// SPDX-License-Identifier: EPL-2.0

package audvox

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ik5/audvox/clip"
)

// Loader reads the clip for one voice.
type Loader interface {
	Load(path string) (*clip.Clip, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*clip.Clip, error)

func (f LoaderFunc) Load(path string) (*clip.Clip, error) { return f(path) }

type options struct {
	log        *zap.Logger
	registerer prometheus.Registerer
	loader     Loader
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRegisterer exports playback metrics on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithLoader replaces the file loader, which decodes by extension.
func WithLoader(l Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}
