//go:build !tinygo

// Package theme loads the palette file and pushes it to the calculator,
// optionally reloading it when the file changes on disk.
package theme

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	logclient "bluecalc/calcos/client/logger"
	"bluecalc/calcos/kernel"
	"bluecalc/calcos/proto"
	palette "bluecalc/calcos/theme"
)

// DefaultDebounce collapses editor save bursts into one reload.
const DefaultDebounce = 100 * time.Millisecond

const sendRetryTicks = 500

type Service struct {
	fs     afero.Fs
	path   string
	watch  bool
	outCap kernel.Capability
	logCap kernel.Capability

	debounce time.Duration

	loaded bool
	sum    uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// New returns a service that sends MsgThemeSet for the file at path.
//
// With watch set, it keeps running and resends the palette whenever the
// file contents change.
func New(fs afero.Fs, path string, watch bool, outCap, logCap kernel.Capability) *Service {
	return &Service{
		fs:       fs,
		path:     filepath.Clean(path),
		watch:    watch,
		outCap:   outCap,
		logCap:   logCap,
		debounce: DefaultDebounce,
		stop:     make(chan struct{}),
	}
}

// SetDebounce overrides DefaultDebounce.
func (s *Service) SetDebounce(d time.Duration) { s.debounce = d }

// Stop ends a watching Run.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.fs == nil {
		return
	}
	s.reload(ctx)
	if !s.watch {
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logclient.Logf(ctx, s.logCap, "theme: watch: %v", err)
		return
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		logclient.Logf(ctx, s.logCap, "theme: watch %s: %v", filepath.Dir(s.path), err)
		return
	}

	reloadCh := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-s.stop:
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !s.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, func() {
				select {
				case reloadCh <- struct{}{}:
				default:
				}
			})
		case <-reloadCh:
			s.reload(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logclient.Logf(ctx, s.logCap, "theme: watch: %v", err)
		}
	}
}

// relevant filters directory events down to writes of the theme file.
// Rename and Create cover editors that save via a temp file.
func (s *Service) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != s.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (s *Service) reload(ctx *kernel.Context) {
	payload, sum, changed, err := s.load()
	if err != nil {
		logclient.Logf(ctx, s.logCap, "theme: %v", err)
		return
	}
	if !changed {
		return
	}
	res := ctx.SendToCapRetry(s.outCap, uint16(proto.MsgThemeSet), payload, kernel.Capability{}, sendRetryTicks)
	if res != kernel.SendOK {
		logclient.Logf(ctx, s.logCap, "theme: send: %s", res)
		return
	}
	s.commit(sum)
	logclient.Logf(ctx, s.logCap, "theme: loaded %s sum=%016x", s.path, sum)
}

// load reads the file and returns the MsgThemeSet payload, reporting
// whether the contents differ from the last delivered palette.
func (s *Service) load() (payload []byte, sum uint64, changed bool, err error) {
	t, sum, err := palette.Load(s.fs, s.path)
	if err != nil {
		return nil, 0, false, err
	}
	if s.loaded && sum == s.sum {
		return nil, sum, false, nil
	}
	payload = proto.ThemePayload(t.Colors())
	if len(payload) > kernel.MaxMessageBytes {
		return nil, 0, false, fmt.Errorf("theme: payload too large (%d bytes)", len(payload))
	}
	return payload, sum, true, nil
}

func (s *Service) commit(sum uint64) {
	s.loaded = true
	s.sum = sum
}
