package main

import (
	"log/slog"

	"github.com/go-theft-auto/glimgui"
)

// lifecycle is the part of *glimgui.Backend the entry points drive.
type lifecycle interface {
	HandleEvents() bool
	PollEvents()
	StartFrame() error
	EndFrame() error
	Destroy()
	SetWindowTitle(title string)
}

// session holds the single process-wide backend behind the C entry points.
// Failures are logged; the C surface has no error returns.
type session struct {
	log        *slog.Logger
	newBackend func(opts ...glimgui.Option) (lifecycle, error)
	backend    lifecycle
}

func newSession(log *slog.Logger) *session {
	return &session{
		log: log,
		newBackend: func(opts ...glimgui.Option) (lifecycle, error) {
			b, err := glimgui.New(opts...)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}

// init creates the backend. A nil fontFile keeps the built-in font.
func (s *session) init(title string, fontFile *string, fontSize float32) {
	if s.backend != nil {
		s.log.Warn("backend already initialized")
		return
	}

	opts := []glimgui.Option{
		glimgui.WithLogger(s.log),
		glimgui.WithTitle(title),
	}
	if fontFile != nil {
		opts = append(opts, glimgui.WithFont(*fontFile, fontSize))
	}

	b, err := s.newBackend(opts...)
	if err != nil {
		// Already logged by New.
		return
	}
	s.backend = b
}

// handleEvents polls events and sets *close on a close request. A nil
// close leaves the request pending. Without a backend there is nothing to
// draw into, so *close is set to end the caller's loop.
func (s *session) handleEvents(close *bool) {
	if s.backend == nil {
		if close != nil {
			*close = true
		}
		return
	}
	if close == nil {
		s.backend.PollEvents()
		return
	}
	if s.backend.HandleEvents() {
		*close = true
	}
}

func (s *session) startFrame() {
	if s.backend == nil {
		return
	}
	if err := s.backend.StartFrame(); err != nil {
		s.log.Error("start frame", "err", err)
	}
}

func (s *session) endFrame() {
	if s.backend == nil {
		return
	}
	if err := s.backend.EndFrame(); err != nil {
		s.log.Error("end frame", "err", err)
	}
}

func (s *session) destroy() {
	if s.backend == nil {
		return
	}
	s.backend.Destroy()
	s.backend = nil
}

func (s *session) setWindowTitle(title string) {
	if s.backend == nil {
		return
	}
	s.backend.SetWindowTitle(title)
}
