//go:build !linux && !darwin

package rawexec

// On platforms without RTLD_NEXT (anything but the two this interceptor
// targets), every Raw* function fails closed rather than silently
// miscompiling a no-op hook.

func RawExecve(path string, argv, envp []string) error {
	return ErrUnsupportedPlatform
}

func RawExecv(path string, argv []string) error {
	return ErrUnsupportedPlatform
}

func RawExecvp(file string, argv []string) error {
	return ErrUnsupportedPlatform
}

func RawSystem(command string) (int, error) {
	return -1, ErrUnsupportedPlatform
}

func RawChdir(path string) error {
	return ErrUnsupportedPlatform
}

func SetErrno(err error) {}
