package drivercaps

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the drivercaps package.
var (
	// ErrUnknownProxyType indicates a proxy type identifier that is not in
	// the ProxyType vocabulary.
	ErrUnknownProxyType = errors.New("drivercaps: unknown proxy type")

	// ErrIncompatibleProxyType indicates a setter implying a proxy type that
	// conflicts with the type the record is already pinned to.
	ErrIncompatibleProxyType = errors.New("drivercaps: proxy type incompatible with current settings")

	// ErrInvalidValue indicates a raw capability value of the wrong shape,
	// such as a non-boolean autodetect flag.
	ErrInvalidValue = errors.New("drivercaps: invalid capability value")

	// ErrSystemLookupUnsupported indicates the current platform has no
	// readable system proxy configuration.
	ErrSystemLookupUnsupported = errors.New("drivercaps: system proxy lookup not supported on this platform")
)

// UnknownProxyTypeError is returned when a value cannot be resolved to a
// ProxyType variant. It wraps ErrUnknownProxyType so that
// errors.Is(err, ErrUnknownProxyType) still works.
type UnknownProxyTypeError struct {
	// Value is the offending value as passed to LookupProxyType.
	Value any
}

func (e *UnknownProxyTypeError) Error() string {
	return fmt.Sprintf("%s: no proxy type found for %v", ErrUnknownProxyType.Error(), e.Value)
}

func (e *UnknownProxyTypeError) Unwrap() error {
	return ErrUnknownProxyType
}

// IncompatibleTypeError is returned when a setter would move a record to a
// different concrete proxy type. It wraps ErrIncompatibleProxyType so that
// errors.Is(err, ErrIncompatibleProxyType) still works.
type IncompatibleTypeError struct {
	// Current is the type the record is pinned to.
	Current ProxyType
	// Requested is the type implied by the rejected write.
	Requested ProxyType
}

func (e *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("%s: requested %s, current %s", ErrIncompatibleProxyType.Error(), e.Requested, e.Current)
}

func (e *IncompatibleTypeError) Unwrap() error {
	return ErrIncompatibleProxyType
}

// InvalidValueError is returned when a raw capability value has the wrong
// shape for its field. It wraps ErrInvalidValue so that
// errors.Is(err, ErrInvalidValue) still works.
type InvalidValueError struct {
	// Field is the wire name of the capability field.
	Field string
	// Value is the offending raw value.
	Value any
	// Want describes the expected shape.
	Want string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s needs %s, got %v (%T)", ErrInvalidValue.Error(), e.Field, e.Want, e.Value, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
