// Command libfission builds the C shared library:
//
//	go build -buildmode=c-shared -o libfission.so ./cmd/libfission
//
// Handles are returned as uintptr_t values, 0 meaning NULL. Error text is
// kept per OS thread; the pointer returned by fission_get_error stays valid
// until the next fission_get_error call on the same thread.
//
// FISSION_CONFIG may name a YAML configuration file whose language, limits
// and log settings are applied when the library loads.
package main

/*
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/fission/abi"
	"github.com/wippyai/fission/config"
	"github.com/wippyai/fission/errors"
)

var surface = newSurface()

func newSurface() *abi.Surface {
	cfg, err := config.Load(os.Getenv("FISSION_CONFIG"))
	if err != nil {
		cfg = config.Default()
	}
	log, lerr := cfg.InstallLogger()
	if lerr != nil {
		log = zap.NewNop()
	}
	if err != nil {
		log.Warn("ignoring FISSION_CONFIG", zap.Error(err))
	}
	return abi.NewSurface(log.Named("abi"), cfg.GatewayOptions()...)
}

// thread is the error context of the calling C thread. A cgo callback stays
// on the C thread that made the call for its whole duration.
func thread() abi.ContextID { return unix.Gettid() }

// errText holds the C copy of the last error string handed to each thread.
var errText = struct {
	sync.Mutex
	m map[int]*C.char
}{m: make(map[int]*C.char)}

//export fission_decompiler_init
func fission_decompiler_init(slaDir *C.char) C.uintptr_t {
	if slaDir == nil {
		surface.SetError(thread(), errors.InvalidInput(errors.PhaseCreate, "sla_dir is null"))
		return 0
	}
	return C.uintptr_t(surface.Init(thread(), C.GoString(slaDir)))
}

//export fission_decompiler_destroy
func fission_decompiler_destroy(h C.uintptr_t) {
	surface.Destroy(toHandle(h))
}

//export fission_decompile
func fission_decompile(h C.uintptr_t, data *C.uint8_t, dataLen C.size_t, base C.uint64_t, out *C.char, outLen C.size_t) C.int {
	return C.int(surface.Decompile(thread(), toHandle(h), bytes(unsafe.Pointer(data), dataLen), uint64(base), bytes(unsafe.Pointer(out), outLen)))
}

//export fission_disassemble
func fission_disassemble(h C.uintptr_t, data *C.uint8_t, dataLen C.size_t, base C.uint64_t, out *C.char, outLen C.size_t) C.int {
	return C.int(surface.Disassemble(thread(), toHandle(h), bytes(unsafe.Pointer(data), dataLen), uint64(base), bytes(unsafe.Pointer(out), outLen)))
}

//export fission_get_error
func fission_get_error() *C.char {
	tid := unix.Gettid()
	msg, ok := surface.LastError(tid)

	errText.Lock()
	defer errText.Unlock()
	if old := errText.m[tid]; old != nil {
		C.free(unsafe.Pointer(old))
		delete(errText.m, tid)
	}
	if !ok {
		return nil
	}
	s := C.CString(msg)
	errText.m[tid] = s
	return s
}

//export fission_is_available
func fission_is_available() C.int {
	return C.int(surface.IsAvailable())
}

// toHandle narrows a C handle value. Values that do not fit never name a
// live handle.
func toHandle(h C.uintptr_t) abi.Handle {
	if uint64(h) > uint64(^uint32(0)) {
		return 0
	}
	return abi.Handle(h)
}

// bytes views C memory as a slice for the duration of one call.
func bytes(p unsafe.Pointer, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(n))
}

func main() {}
