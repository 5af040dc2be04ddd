package rawexec

import "errors"

// ErrSymbolMissing is returned when dlsym(RTLD_NEXT, ...) yields a null
// address for one of the intercepted libc entry points. The target libc
// always provides these symbols in practice, so this is a defensive
// check only, never expected to trigger outside of a broken libc.
var ErrSymbolMissing = errors.New("rawexec: next-in-chain symbol not found")

// ErrUnsupportedPlatform is returned by every Raw* function on
// platforms without an RTLD_NEXT-capable dynamic linker.
var ErrUnsupportedPlatform = errors.New("rawexec: unsupported platform")
