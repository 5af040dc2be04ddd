//go:build linux || darwin

// Command libconstellation builds as a shared object
// (-buildmode=c-shared) meant to be placed on LD_PRELOAD ahead of the
// target libc. It replaces the process-spawn family — execve, execv,
// execvp, execl, execlp, system — and chdir, rerouting every
// intercepted call to the same command run over SSH on a remote host.
//
// Build: go build -buildmode=c-shared -o libconstellation.so ./cmd/libconstellation
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"os"
	"syscall"
	"unsafe"

	"github.com/aspects-ai/constellationfs-interceptor/internal/rawexec"
)

// goStrings converts a NULL-terminated C char** into a Go string slice.
// A nil argv yields a nil slice.
func goStrings(argv **C.char) []string {
	if argv == nil {
		return nil
	}
	var out []string
	// 1<<28 is an arbitrary bound well beyond any real argv/envp; Go
	// requires a fixed-size array type to index through a C pointer.
	arr := (*[1 << 28]*C.char)(unsafe.Pointer(argv))
	for i := 0; arr[i] != nil; i++ {
		out = append(out, C.GoString(arr[i]))
	}
	return out
}

// toErrno maps a dispatch/policy error onto the errno value the caller
// sees. A syscall.Errno anywhere in the chain (fork/exec failures from
// os/exec surface one) is preserved as-is; anything else — out of
// memory, a missing port, a wait failure with no underlying errno —
// becomes EINVAL, since Go's os/exec does not always expose a raw
// errno for every failure mode the C original distinguishes.
func toErrno(err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.EINVAL
}

//export execve
func execve(path *C.char, argv **C.char, envp **C.char) C.int {
	goPath := C.GoString(path)
	goArgv := goStrings(argv)
	cfg, log := loadHookState()

	intercepted, status, err := interceptExec(cfg, log, goPath, goArgv)
	if !intercepted {
		if ferr := rawexec.RawExecve(goPath, goArgv, goStrings(envp)); ferr != nil {
			rawexec.SetErrno(ferr)
			return -1
		}
		return 0
	}
	if err != nil {
		rawexec.SetErrno(toErrno(err))
		return -1
	}
	if status == 0 {
		os.Exit(0)
	}
	return C.int(status)
}

//export execv
func execv(path *C.char, argv **C.char) C.int {
	goPath := C.GoString(path)
	goArgv := goStrings(argv)
	cfg, log := loadHookState()

	intercepted, status, err := interceptExec(cfg, log, goPath, goArgv)
	if !intercepted {
		if ferr := rawexec.RawExecv(goPath, goArgv); ferr != nil {
			rawexec.SetErrno(ferr)
			return -1
		}
		return 0
	}
	if err != nil {
		rawexec.SetErrno(toErrno(err))
		return -1
	}
	if status == 0 {
		os.Exit(0)
	}
	return C.int(status)
}

//export execvp
func execvp(file *C.char, argv **C.char) C.int {
	goFile := C.GoString(file)
	goArgv := goStrings(argv)
	cfg, log := loadHookState()

	intercepted, status, err := interceptExec(cfg, log, goFile, goArgv)
	if !intercepted {
		if ferr := rawexec.RawExecvp(goFile, goArgv); ferr != nil {
			rawexec.SetErrno(ferr)
			return -1
		}
		return 0
	}
	if err != nil {
		rawexec.SetErrno(toErrno(err))
		return -1
	}
	if status == 0 {
		os.Exit(0)
	}
	return C.int(status)
}

//export system
func system(command *C.char) C.int {
	if command == nil {
		// system(NULL) never attempts dispatch; it reports success
		// without touching the policy or dispatcher at all.
		return 0
	}
	goCommand := C.GoString(command)
	cfg, log := loadHookState()

	intercepted, status, err := interceptSystem(cfg, log, goCommand)
	if !intercepted {
		ret, ferr := rawexec.RawSystem(goCommand)
		if ferr != nil {
			rawexec.SetErrno(ferr)
		}
		return C.int(ret)
	}
	if err != nil {
		rawexec.SetErrno(toErrno(err))
		return -1
	}
	return C.int(status)
}

//export chdir
func chdir(path *C.char) C.int {
	goPath := C.GoString(path)

	origErr := rawexec.RawChdir(goPath)
	if origErr == nil {
		return 0
	}

	if mkdirErr := os.MkdirAll(goPath, 0755); mkdirErr != nil {
		rawexec.SetErrno(toErrno(origErr))
		return -1
	}

	if err := rawexec.RawChdir(goPath); err != nil {
		rawexec.SetErrno(toErrno(err))
		return -1
	}
	return 0
}
