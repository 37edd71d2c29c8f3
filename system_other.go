//go:build !windows

package drivercaps

// System resolves the operating system's proxy configuration into a
// concrete Proxy record. Only Windows exposes one in a stable location;
// on every other platform System fails with ErrSystemLookupUnsupported.
func System() (*Proxy, error) {
	return nil, ErrSystemLookupUnsupported
}
