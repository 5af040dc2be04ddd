//go:build linux || darwin

// Package rawexec resolves and calls the real, next-in-chain libc entry
// points that cmd/libconstellation's hooks fall through to once a
// policy decision says "let this one through." Each symbol is looked
// up exactly once via dlsym(RTLD_NEXT, ...) and the resulting function
// pointer is cached for the lifetime of the process.
package rawexec

/*
#define _GNU_SOURCE
#include <dlfcn.h>
#include <errno.h>
#include <stdlib.h>
#include <unistd.h>

typedef int (*execve_fn)(const char *, char *const[], char *const[]);
typedef int (*execv_fn)(const char *, char *const[]);
typedef int (*execvp_fn)(const char *, char *const[]);
typedef int (*system_fn)(const char *);
typedef int (*chdir_fn)(const char *);

static void *constellation_resolve_next(const char *name) {
	return dlsym(RTLD_NEXT, name);
}

static int constellation_call_execve(void *fn, const char *path, char *const argv[], char *const envp[]) {
	return ((execve_fn)fn)(path, argv, envp);
}

static int constellation_call_execv(void *fn, const char *path, char *const argv[]) {
	return ((execv_fn)fn)(path, argv);
}

static int constellation_call_execvp(void *fn, const char *file, char *const argv[]) {
	return ((execvp_fn)fn)(file, argv);
}

static int constellation_call_system(void *fn, const char *command) {
	return ((system_fn)fn)(command);
}

static int constellation_call_chdir(void *fn, const char *path) {
	return ((chdir_fn)fn)(path);
}

// Exported hooks (cmd/libconstellation) live in a different cgo
// translation unit and can't reach this file's errno.h state directly;
// this lets Go hand a captured errno value back to the real caller
// right before an exported hook returns -1.
static void constellation_set_errno(int e) {
	errno = e;
}
*/
import "C"

import (
	"sync"
	"syscall"
	"unsafe"
)

var (
	onceExecve, onceExecv, onceExecvp, onceSystem, onceChdir sync.Once
	ptrExecve, ptrExecv, ptrExecvp, ptrSystem, ptrChdir      unsafe.Pointer
)

func resolve(once *sync.Once, slot *unsafe.Pointer, name string) unsafe.Pointer {
	once.Do(func() {
		cname := C.CString(name)
		defer C.free(unsafe.Pointer(cname))
		*slot = C.constellation_resolve_next(cname)
	})
	return *slot
}

// cArgv converts a Go string slice into a NULL-terminated C char**,
// suitable for the argv/envp parameters of the exec family. The caller
// must free the result with freeArgv.
func cArgv(args []string) **C.char {
	n := len(args)
	cArr := C.malloc(C.size_t(n+1) * C.size_t(unsafe.Sizeof(uintptr(0))))
	arr := (*[1 << 28]*C.char)(cArr)[: n+1 : n+1]
	for i, a := range args {
		arr[i] = C.CString(a)
	}
	arr[n] = nil
	return (**C.char)(cArr)
}

func freeArgv(argv **C.char, n int) {
	arr := (*[1 << 28]*C.char)(unsafe.Pointer(argv))[:n:n]
	for _, p := range arr {
		C.free(unsafe.Pointer(p))
	}
	C.free(unsafe.Pointer(argv))
}

// RawExecve calls the real execve, bypassing every hook. It only
// returns on failure, matching execve's own contract.
func RawExecve(path string, argv, envp []string) error {
	fn := resolve(&onceExecve, &ptrExecve, "execve")
	if fn == nil {
		return ErrSymbolMissing
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cav := cArgv(argv)
	defer freeArgv(cav, len(argv))
	cev := cArgv(envp)
	defer freeArgv(cev, len(envp))

	ret, errno := C.constellation_call_execve(fn, cpath, cav, cev)
	if ret == 0 {
		return nil
	}
	return errno
}

// RawExecv calls the real execv, bypassing every hook.
func RawExecv(path string, argv []string) error {
	fn := resolve(&onceExecv, &ptrExecv, "execv")
	if fn == nil {
		return ErrSymbolMissing
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cav := cArgv(argv)
	defer freeArgv(cav, len(argv))

	ret, errno := C.constellation_call_execv(fn, cpath, cav)
	if ret == 0 {
		return nil
	}
	return errno
}

// RawExecvp calls the real execvp, bypassing every hook.
func RawExecvp(file string, argv []string) error {
	fn := resolve(&onceExecvp, &ptrExecvp, "execvp")
	if fn == nil {
		return ErrSymbolMissing
	}

	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	cav := cArgv(argv)
	defer freeArgv(cav, len(argv))

	ret, errno := C.constellation_call_execvp(fn, cfile, cav)
	if ret == 0 {
		return nil
	}
	return errno
}

// RawSystem calls the real system(3), returning its raw status value
// unchanged (it is not an errno-bearing call in the same sense as the
// exec family: a non-zero result is the invoked shell's exit status,
// not a failure of system() itself, except for the documented -1 case).
func RawSystem(command string) (int, error) {
	fn := resolve(&onceSystem, &ptrSystem, "system")
	if fn == nil {
		return -1, ErrSymbolMissing
	}

	ccmd := C.CString(command)
	defer C.free(unsafe.Pointer(ccmd))

	ret, errno := C.constellation_call_system(fn, ccmd)
	status := int(ret)
	if status == -1 {
		return status, errno
	}
	return status, nil
}

// RawChdir calls the real chdir, bypassing every hook.
func RawChdir(path string) error {
	fn := resolve(&onceChdir, &ptrChdir, "chdir")
	if fn == nil {
		return ErrSymbolMissing
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, errno := C.constellation_call_chdir(fn, cpath)
	if ret == 0 {
		return nil
	}
	return errno
}

// SetErrno installs err's errno value into the C thread's errno, for
// use immediately before an exported hook returns a failure sentinel
// (-1) to its caller. Non-errno errors are mapped to EIO.
func SetErrno(err error) {
	if errno, ok := err.(syscall.Errno); ok {
		C.constellation_set_errno(C.int(errno))
		return
	}
	C.constellation_set_errno(C.int(syscall.EIO))
}
