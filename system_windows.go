package drivercaps

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// winINETKey is the per-user WinINET settings key consulted by System.
const winINETKey = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

// System resolves the current user's Windows proxy configuration into a
// concrete Proxy record: a PAC record when an autoconfig URL is set, a
// manual record when a proxy server is enabled, otherwise a direct one.
// This is what a system-typed capability means on this host.
func System() (*Proxy, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, winINETKey, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	autoConfigURL, err := stringValue(k, "AutoConfigURL")
	if err != nil {
		return nil, err
	}
	enable, err := integerValue(k, "ProxyEnable")
	if err != nil {
		return nil, err
	}
	server, err := stringValue(k, "ProxyServer")
	if err != nil {
		return nil, err
	}
	override, err := stringValue(k, "ProxyOverride")
	if err != nil {
		return nil, err
	}

	return fromWinINET(autoConfigURL, enable != 0, server, override)
}

// stringValue reads a string value, treating an absent value as empty.
func stringValue(k registry.Key, name string) (string, error) {
	v, _, err := k.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// integerValue reads a DWORD value, treating an absent value as zero.
func integerValue(k registry.Key, name string) (uint64, error) {
	v, _, err := k.GetIntegerValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}
