// Command glimgui-capi exposes the backend lifecycle to C callers.
//
// Build it as a shared library:
//
//	go build -buildmode=c-shared -o libglimgui.so ./cmd/glimgui-capi
//
// All entry points must be called from the host's main thread. A Go call
// made from C stays on the calling thread, so GLFW and OpenGL run there.
// There is a single process-wide backend; failures are reported on stderr
// and the call returns early. If Init failed, HandleEvents reports a close
// request so the host loop ends.
package main

/*
#include <stdbool.h>
*/
import "C"

import (
	"log/slog"
	"os"
)

var capi = newSession(slog.New(slog.NewTextHandler(os.Stderr, nil)))

//export glfw_opengl3_Init
func glfw_opengl3_Init(winName *C.char, fontFilename *C.char, fontSize C.float) {
	var fontFile *string
	if fontFilename != nil {
		name := C.GoString(fontFilename)
		fontFile = &name
	}
	capi.init(C.GoString(winName), fontFile, float32(fontSize))
}

//export glfw_opengl3_HandleEvents
func glfw_opengl3_HandleEvents(close *C.bool) {
	if close == nil {
		capi.handleEvents(nil)
		return
	}
	requested := bool(*close)
	capi.handleEvents(&requested)
	*close = C.bool(requested)
}

//export glfw_opengl3_StartFrame
func glfw_opengl3_StartFrame() {
	capi.startFrame()
}

//export glfw_opengl3_EndFrame
func glfw_opengl3_EndFrame() {
	capi.endFrame()
}

//export glfw_opengl3_Destroy
func glfw_opengl3_Destroy() {
	capi.destroy()
}

//export glfw_opengl3_SetWindowTitle
func glfw_opengl3_SetWindowTitle(winName *C.char) {
	capi.setWindowTitle(C.GoString(winName))
}

func main() {}
