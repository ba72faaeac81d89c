// Package keys derives the storage keys Chrome uses to index domain names in
// its TransportSecurity dictionary. The derivation is one-way: a key cannot be
// turned back into a hostname, which is why the stored sites cannot be
// enumerated.
package keys

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrLabelTooLong is returned when a domain label cannot be represented in
// DNS wire form, whose single length byte limits labels to 255 bytes.
var ErrLabelTooLong = errors.New("domain label exceeds 255 bytes")

const maxLabelLen = 255

// DNSWireForm converts a dotted hostname to "DNS form" as used by the DNS
// wire protocol and the Chromium source: each label is emitted as a single
// length byte followed by the label's raw bytes. No trailing root label is
// appended. The hostname is not normalized in any way (case, trailing dot,
// IDN); keys must match what Chrome derives from the exact same bytes.
func DNSWireForm(hostname string) ([]byte, error) {
	labels := strings.Split(hostname, ".")
	wire := make([]byte, 0, len(hostname)+len(labels))
	for _, label := range labels {
		if len(label) > maxLabelLen {
			return nil, fmt.Errorf("%w: %q is %d bytes", ErrLabelTooLong, label, len(label))
		}
		wire = append(wire, byte(len(label)))
		wire = append(wire, label...)
	}
	return wire, nil
}

// StorageKey returns the key under which Chrome indexes hostname in the
// TransportSecurity dictionary: the base64-encoded SHA-256 digest of the DNS
// form of the name followed by a zero byte (the root label terminator).
func StorageKey(hostname string) (string, error) {
	wire, err := DNSWireForm(hostname)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(append(wire, 0x00))
	return base64.StdEncoding.EncodeToString(digest[:]), nil
}
