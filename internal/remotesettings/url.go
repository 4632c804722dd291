// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotesettings

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// hostProfile applies UTS #46 lookup mapping without the STD3 ASCII rules,
// so hosts like "remote_settings" in a compose network stay valid.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
)

var defaultPorts = map[string]string{
	"ftp":   "21",
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
}

const (
	c0ControlOrSpace   = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\t\n\x0b\x0c\r\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f "
	forbiddenHostRunes = " #%/:<>?@[\\]^|\x7f"
)

// parseAbsoluteURL parses raw and normalizes it the way browsers do:
// lowercase scheme and host, IDNA-encoded host, canonical IPv4/IPv6
// literals, no default port and "/" for an empty path.
func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.Trim(raw, c0ControlOrSpace))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, errMissingScheme
	}
	if u.Host == "" {
		return nil, errMissingHost
	}

	bracketed := strings.HasPrefix(u.Host, "[")
	host, err := normalizeHost(u.Hostname(), bracketed)
	if err != nil {
		return nil, err
	}

	port, err := normalizePort(u.Scheme, u.Port())
	if err != nil {
		return nil, err
	}

	switch {
	case port != "":
		u.Host = net.JoinHostPort(host, port)
	case bracketed:
		u.Host = "[" + host + "]"
	default:
		u.Host = host
	}

	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	return u, nil
}

func normalizeHost(host string, bracketed bool) (string, error) {
	if bracketed {
		addr, err := netip.ParseAddr(host)
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return "", errInvalidIPv6
		}
		return serializeIPv6(addr), nil
	}

	if hasForbiddenHostRune(host) {
		return "", errForbiddenHostRune
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", err
	}
	// Mapping can turn fullwidth forms such as U+FF0F into '/', so the
	// mapped host is checked again.
	if hasForbiddenHostRune(ascii) {
		return "", errForbiddenHostRune
	}
	if ascii == "" {
		return "", errMissingHost
	}

	if endsInNumber(ascii) {
		return parseIPv4(ascii)
	}

	return ascii, nil
}

func hasForbiddenHostRune(host string) bool {
	return strings.ContainsAny(host, forbiddenHostRunes) || strings.ContainsAny(host, c0ControlOrSpace)
}

// serializeIPv6 writes addr as eight hex pieces with the first longest run
// of zero pieces compressed. IPv4-mapped addresses stay in hex
// ("::ffff:102:304"), unlike netip's dotted form.
func serializeIPv6(addr netip.Addr) string {
	if !addr.Is4In6() {
		return addr.String()
	}

	b := addr.As16()
	var pieces [8]uint16
	for i := range pieces {
		pieces[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}

	start, length := -1, 0
	for i := 0; i < len(pieces); {
		if pieces[i] != 0 {
			i++
			continue
		}
		j := i
		for j < len(pieces) && pieces[j] == 0 {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
		i = j
	}
	if length < 2 {
		start = -1
	}

	var sb strings.Builder
	for i := 0; i < len(pieces); i++ {
		if i == start {
			sb.WriteString("::")
			i += length - 1
			continue
		}
		if i > 0 && i != start+length {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%x", pieces[i])
	}
	return sb.String()
}

func normalizePort(scheme, port string) (string, error) {
	if port == "" {
		return "", nil
	}

	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", errInvalidPort
	}

	port = strconv.FormatUint(n, 10)
	if defaultPorts[scheme] == port {
		return "", nil
	}
	return port, nil
}

// endsInNumber reports whether the last label of host looks numeric, in
// which case host must be an IPv4 address.
func endsInNumber(host string) bool {
	labels := strings.Split(host, ".")
	if labels[len(labels)-1] == "" {
		if len(labels) == 1 {
			return false
		}
		labels = labels[:len(labels)-1]
	}

	last := labels[len(labels)-1]
	if last != "" && strings.Trim(last, "0123456789") == "" {
		return true
	}

	_, err := parseIPv4Number(last)
	return err == nil
}

// parseIPv4 accepts the numeric forms browsers accept ("127.1",
// "0x7f.0.0.1", "017700000001") and returns the dotted-decimal address.
func parseIPv4(host string) (string, error) {
	parts := strings.Split(host, ".")
	if parts[len(parts)-1] == "" && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return "", errInvalidIPv4
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, err := parseIPv4Number(part)
		if err != nil {
			return "", errInvalidIPv4
		}
		numbers = append(numbers, n)
	}

	for _, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			return "", errInvalidIPv4
		}
	}

	last := numbers[len(numbers)-1]
	if last >= 1<<(8*(5-len(numbers))) {
		return "", errInvalidIPv4
	}

	ipv4 := last
	for i, n := range numbers[:len(numbers)-1] {
		ipv4 += n << (8 * (3 - i))
	}

	return netip.AddrFrom4([4]byte{
		byte(ipv4 >> 24),
		byte(ipv4 >> 16),
		byte(ipv4 >> 8),
		byte(ipv4),
	}).String(), nil
}

func parseIPv4Number(s string) (uint64, error) {
	if s == "" {
		return 0, errInvalidIPv4
	}

	base := 10
	switch {
	case len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X"):
		base, s = 16, s[2:]
	case len(s) >= 2 && s[0] == '0':
		base, s = 8, s[1:]
	}
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, errInvalidIPv4
	}
	return n, nil
}
