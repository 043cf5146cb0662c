package epc

import "strings"

// MaxPayloadBytes is the Girocode ceiling; larger payloads cannot be
// encoded reliably at the error-correction level banking apps expect.
const MaxPayloadBytes = 331

const (
	serviceTag     = "BCD"
	identification = "SCT"
	lineSeparator  = "\n"
	payloadSlots   = 12

	// Slots 1-7 (service tag through IBAN) are always emitted, even
	// when the BIC line is empty.
	mandatorySlots = 7
)

// Version is the payload version tag on line 2.
type Version string

const (
	// VersionAuto picks 001 when a BIC is present and 002 otherwise.
	VersionAuto Version = ""

	// Version1 requires a BIC.
	Version1 Version = "001"

	// Version2 makes the BIC optional inside the EEA.
	Version2 Version = "002"
)

// Payload is the assembled EPC069-12 text block: up to 12 lines in
// fixed slot order, at most 331 bytes. It is immutable once built.
type Payload struct {
	lines   []string
	charset Charset
	version Version
}

// String returns the exact byte sequence to encode into the QR code.
// Trailing empty optional lines are truncated; empty lines followed by
// populated ones are kept, so every value stays in its slot.
func (p *Payload) String() string {
	return strings.Join(p.lines, lineSeparator)
}

// Bytes returns a fresh copy of the payload bytes.
func (p *Payload) Bytes() []byte {
	return []byte(p.String())
}

// Lines returns a copy of the emitted slot lines.
func (p *Payload) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// Charset is the character-set code declared on line 3.
func (p *Payload) Charset() Charset {
	return p.charset
}

// Version is the version tag emitted on line 2.
func (p *Payload) Version() Version {
	return p.version
}

// Builder assembles payloads under a fixed version and character-set
// policy. The zero policy matches what most generators emit: automatic
// version selection and a constant UTF-8 declaration. Builders are
// stateless and safe for concurrent use.
type Builder struct {
	version Version
	charset CharsetSelection
}

// Option configures a Builder.
type Option func(*Builder)

// WithVersion pins the payload version instead of deriving it from BIC
// presence. Pinning Version1 makes builds without a BIC fail.
func WithVersion(v Version) Option {
	return func(b *Builder) { b.version = v }
}

// WithCharsetSelection sets the character-set declaration policy.
func WithCharsetSelection(s CharsetSelection) Option {
	return func(b *Builder) { b.charset = s }
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{version: VersionAuto, charset: SelectUTF8}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates the record and assembles its canonical payload.
// Validation fails fast: the first violation in slot order is returned
// and no partial payload is ever produced.
func (b *Builder) Build(rec PaymentRecord) (*Payload, error) {
	version := b.version
	if version == VersionAuto {
		if rec.BIC != "" {
			version = Version1
		} else {
			version = Version2
		}
	}

	if err := validate(rec, version); err != nil {
		return nil, err
	}

	charset := selectCharset(b.charset, rec)

	amountLine := ""
	if rec.Amount != nil {
		amountLine = "EUR" + rec.Amount.String()
	}

	slots := [payloadSlots]string{
		serviceTag,
		string(version),
		charset.String(),
		identification,
		rec.BIC,
		rec.BeneficiaryName,
		rec.IBAN,
		amountLine,
		rec.PurposeCode,
		rec.RemittanceReference,
		rec.RemittanceText,
		rec.InformationText,
	}

	// Truncate trailing empty optional lines, keeping interior empties.
	last := payloadSlots
	for last > mandatorySlots && slots[last-1] == "" {
		last--
	}
	lines := make([]string, last)
	copy(lines, slots[:last])

	p := &Payload{lines: lines, charset: charset, version: version}
	if n := len(p.String()); n > MaxPayloadBytes {
		return nil, &PayloadTooLargeError{Actual: n, Max: MaxPayloadBytes}
	}
	return p, nil
}

// Build assembles a payload with the default policy: version derived
// from BIC presence, UTF-8 always declared.
func Build(rec PaymentRecord) (*Payload, error) {
	return NewBuilder().Build(rec)
}
