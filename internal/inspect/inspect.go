// Package inspect recognises the format of a detached signature blob.
//
// It only sniffs the encoding and pulls out the signer key ID for display.
// No signature is ever checked against a key.
package inspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/jedisct1/go-minisign"
)

// Kind is the detected signature format.
type Kind int

const (
	// KindUnknown means no supported format matched
	KindUnknown Kind = iota
	// KindMinisign is a minisign .minisig file
	KindMinisign
	// KindOpenPGPArmored is an ASCII-armored OpenPGP signature (.asc)
	KindOpenPGPArmored
	// KindOpenPGPBinary is a binary OpenPGP signature packet (.sig)
	KindOpenPGPBinary
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindMinisign:
		return "minisign"
	case KindOpenPGPArmored:
		return "openpgp-armored"
	case KindOpenPGPBinary:
		return "openpgp-binary"
	default:
		return "unknown"
	}
}

// Report describes a signature blob.
type Report struct {
	Kind    Kind
	KeyID   string // upper-case hex, empty when not available
	Comment string // minisign trusted comment
}

// Known reports whether the blob matched a supported format.
func (r Report) Known() bool {
	return r.Kind != KindUnknown
}

// Inspect classifies data. It never fails; unrecognised input yields
// KindUnknown.
func Inspect(data []byte) Report {
	if r, ok := inspectMinisign(data); ok {
		return r
	}
	if r, ok := inspectArmored(data); ok {
		return r
	}
	if r, ok := inspectBinary(data); ok {
		return r
	}
	return Report{Kind: KindUnknown}
}

func inspectMinisign(data []byte) (Report, bool) {
	if !bytes.HasPrefix(data, []byte("untrusted comment:")) {
		return Report{}, false
	}
	sig, err := minisign.DecodeSignature(string(data))
	if err != nil {
		return Report{}, false
	}
	return Report{
		Kind:    KindMinisign,
		KeyID:   fmt.Sprintf("%016X", binary.LittleEndian.Uint64(sig.KeyId[:])),
		Comment: strings.TrimPrefix(sig.TrustedComment, "trusted comment: "),
	}, true
}

func inspectArmored(data []byte) (Report, bool) {
	block, err := armor.Decode(bytes.NewReader(data))
	if err != nil || block.Type != "PGP SIGNATURE" {
		return Report{}, false
	}
	report := Report{Kind: KindOpenPGPArmored}
	if p, err := packet.Read(block.Body); err == nil {
		if sig, ok := p.(*packet.Signature); ok {
			report.KeyID = issuer(sig)
		}
	}
	return report, true
}

func inspectBinary(data []byte) (Report, bool) {
	p, err := packet.Read(bytes.NewReader(data))
	if err != nil {
		return Report{}, false
	}
	sig, ok := p.(*packet.Signature)
	if !ok {
		return Report{}, false
	}
	return Report{Kind: KindOpenPGPBinary, KeyID: issuer(sig)}, true
}

func issuer(sig *packet.Signature) string {
	if sig.IssuerKeyId == nil {
		return ""
	}
	return fmt.Sprintf("%016X", *sig.IssuerKeyId)
}
