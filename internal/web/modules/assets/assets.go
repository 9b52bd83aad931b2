// Package assets serves the site stylesheet bundle and uploaded media.
package assets

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/web/static"
)

// StaticModule serves embedded static assets.
type StaticModule struct{}

// NewStatic returns the embedded static asset module.
func NewStatic() StaticModule {
	return StaticModule{}
}

// ID returns a stable module identifier.
func (StaticModule) ID() string { return "static" }

// Mount wires the embedded asset file server.
func (StaticModule) Mount() (module.Mount, error) {
	handler := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}

// MediaModule serves uploaded media from the media store root.
type MediaModule struct {
	root string
}

// NewMedia returns a media module serving files under root.
func NewMedia(root string) MediaModule {
	return MediaModule{root: root}
}

// ID returns a stable module identifier.
func (MediaModule) ID() string { return "media" }

// Mount wires the uploaded media file server.
func (m MediaModule) Mount() (module.Mount, error) {
	handler := http.StripPrefix(routepath.MediaPrefix, http.FileServer(http.Dir(m.root)))
	return module.Mount{Prefix: routepath.MediaPrefix, Handler: handler}, nil
}
