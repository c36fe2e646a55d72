package glimgui

import (
	"errors"

	"github.com/go-theft-auto/glimgui/backend/opengl"
)

// Errors returned by the backend. Failures are wrapped with context, so
// compare with errors.Is.
var (
	ErrGLFWInit     = opengl.ErrGLFWInit
	ErrWindowCreate = opengl.ErrWindowCreate
	ErrLoaderInit   = opengl.ErrLoaderInit

	ErrFontLoad        = errors.New("glimgui: failed to load font")
	ErrNotInitialized  = errors.New("glimgui: backend not initialized")
	ErrFrameNotStarted = errors.New("glimgui: frame not started")
	ErrFrameInProgress = errors.New("glimgui: frame already in progress")
	ErrInvalidConfig   = errors.New("glimgui: invalid config")
	ErrBackendActive   = errors.New("glimgui: another backend is still active")
)
