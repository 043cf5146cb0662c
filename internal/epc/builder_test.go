package epc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girohub/epc-qr/internal/epc"
)

func mustAmount(t *testing.T, s string) *epc.Amount {
	t.Helper()
	a, err := epc.ParseAmount(s)
	require.NoError(t, err)
	return &a
}

func validRecord(t *testing.T) epc.PaymentRecord {
	t.Helper()
	return epc.PaymentRecord{
		BeneficiaryName: "Max Mustermann",
		IBAN:            "DE02120300000000202051",
		Amount:          mustAmount(t, "12.50"),
		RemittanceText:  "Invoice 123",
	}
}

func TestBuild_WithoutBIC(t *testing.T) {
	p, err := epc.Build(validRecord(t))
	require.NoError(t, err)

	want := strings.Join([]string{
		"BCD",
		"002",
		"1",
		"SCT",
		"",
		"Max Mustermann",
		"DE02120300000000202051",
		"EUR12.50",
		"",
		"",
		"Invoice 123",
	}, "\n")
	assert.Equal(t, want, p.String())
	assert.Equal(t, epc.Version2, p.Version())
	assert.Equal(t, epc.CharsetUTF8, p.Charset())
}

func TestBuild_WithBIC(t *testing.T) {
	rec := validRecord(t)
	rec.BIC = "BYLADEM1001"

	p, err := epc.Build(rec)
	require.NoError(t, err)

	lines := p.Lines()
	assert.Equal(t, "001", lines[1])
	assert.Equal(t, "BYLADEM1001", lines[4])
}

func TestBuild_PayloadWithinLimits(t *testing.T) {
	rec := epc.PaymentRecord{
		BeneficiaryName:     strings.Repeat("N", 70),
		IBAN:                "DE02120300000000202051",
		BIC:                 "BYLADEM1001",
		Amount:              mustAmount(t, "999999999.99"),
		PurposeCode:         "GDDS",
		RemittanceReference: strings.Repeat("R", 35),
		InformationText:     strings.Repeat("I", 70),
	}

	p, err := epc.Build(rec)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(p.Bytes()), epc.MaxPayloadBytes)
	assert.LessOrEqual(t, len(p.Lines()), 12)
}

func TestBuild_TruncatesTrailingEmptyLines(t *testing.T) {
	rec := epc.PaymentRecord{
		BeneficiaryName: "Max Mustermann",
		IBAN:            "DE02120300000000202051",
	}

	p, err := epc.Build(rec)
	require.NoError(t, err)

	// Nothing after the IBAN, so the payload stops there. The empty
	// BIC line stays because the name and IBAN follow it.
	assert.Equal(t, "BCD\n002\n1\nSCT\n\nMax Mustermann\nDE02120300000000202051", p.String())
	assert.Len(t, p.Lines(), 7)
}

func TestBuild_Idempotent(t *testing.T) {
	rec := validRecord(t)

	first, err := epc.Build(rec)
	require.NoError(t, err)
	second, err := epc.Build(rec)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestBuild_RoundTripRecoversFields(t *testing.T) {
	rec := epc.PaymentRecord{
		BeneficiaryName:     "Erika Musterfrau",
		IBAN:                "DE02120300000000202051",
		BIC:                 "BYLADEM1001",
		Amount:              mustAmount(t, "250.00"),
		PurposeCode:         "SALA",
		RemittanceReference: "RF18539007547034",
		InformationText:     "March salary",
	}

	p, err := epc.Build(rec)
	require.NoError(t, err)

	lines := strings.Split(p.String(), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, rec.BIC, lines[4])
	assert.Equal(t, rec.BeneficiaryName, lines[5])
	assert.Equal(t, rec.IBAN, lines[6])
	assert.Equal(t, "EUR250.00", lines[7])
	assert.Equal(t, rec.PurposeCode, lines[8])
	assert.Equal(t, rec.RemittanceReference, lines[9])
	assert.Equal(t, "", lines[10])
	assert.Equal(t, rec.InformationText, lines[11])
}

func TestBuild_ConflictingRemittanceFields(t *testing.T) {
	rec := validRecord(t)
	rec.RemittanceReference = "RF18539007547034"

	_, err := epc.Build(rec)
	assert.ErrorIs(t, err, epc.ErrConflictingRemittanceFields)
}

func TestBuild_ChecksumMismatch(t *testing.T) {
	rec := validRecord(t)
	rec.IBAN = "DE00120300000000202051"

	_, err := epc.Build(rec)
	var ibanErr *epc.InvalidIBANError
	require.ErrorAs(t, err, &ibanErr)
	assert.Equal(t, epc.IBANReasonChecksum, ibanErr.Reason)
}

func TestBuild_NameBoundary(t *testing.T) {
	rec := validRecord(t)
	rec.BeneficiaryName = strings.Repeat("a", 70)
	_, err := epc.Build(rec)
	require.NoError(t, err)

	rec.BeneficiaryName = strings.Repeat("a", 71)
	_, err = epc.Build(rec)
	var tooLong *epc.FieldTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, epc.FieldBeneficiaryName, tooLong.Field)
	assert.Equal(t, 70, tooLong.Max)
	assert.Equal(t, 71, tooLong.Actual)
}

func TestBuild_PurposeTooLong(t *testing.T) {
	rec := validRecord(t)
	rec.PurposeCode = "ABCDE"

	_, err := epc.Build(rec)
	var tooLong *epc.FieldTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, epc.FieldPurposeCode, tooLong.Field)
	assert.Equal(t, 4, tooLong.Max)
	assert.Equal(t, 5, tooLong.Actual)
}

func TestBuild_DisallowedCharacter(t *testing.T) {
	rec := validRecord(t)
	rec.BeneficiaryName = "Max@Mustermann"

	_, err := epc.Build(rec)
	var charErr *epc.InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, epc.FieldBeneficiaryName, charErr.Field)
	assert.Equal(t, '@', charErr.Char)
	assert.Equal(t, 3, charErr.Position)
}

func TestBuild_Version1RequiresBIC(t *testing.T) {
	rec := validRecord(t)
	b := epc.NewBuilder(epc.WithVersion(epc.Version1))

	_, err := b.Build(rec)
	assert.ErrorIs(t, err, epc.ErrIncompatibleVersionForMissingBIC)
}

func TestBuild_CharsetAuto(t *testing.T) {
	b := epc.NewBuilder(epc.WithCharsetSelection(epc.SelectAuto))

	rec := validRecord(t)
	p, err := b.Build(rec)
	require.NoError(t, err)
	assert.Equal(t, epc.CharsetISO8859_1, p.Charset())
	assert.Equal(t, "2", p.Lines()[2])

	rec.BeneficiaryName = "Käthe Müller"
	p, err = b.Build(rec)
	require.NoError(t, err)
	assert.Equal(t, epc.CharsetUTF8, p.Charset())
	assert.Equal(t, "1", p.Lines()[2])
}

func TestBuild_PayloadTooLarge(t *testing.T) {
	rec := epc.PaymentRecord{
		BeneficiaryName: strings.Repeat("N", 70),
		IBAN:            "DE02120300000000202051",
		Amount:          mustAmount(t, "999999999.99"),
		RemittanceText:  strings.Repeat("T", 140),
		InformationText: strings.Repeat("I", 70),
	}

	_, err := epc.Build(rec)
	var tooLarge *epc.PayloadTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, epc.MaxPayloadBytes, tooLarge.Max)
	assert.Greater(t, tooLarge.Actual, epc.MaxPayloadBytes)
}

func TestBuild_MissingMandatoryFields(t *testing.T) {
	_, err := epc.Build(epc.PaymentRecord{IBAN: "DE02120300000000202051"})
	var required *epc.RequiredFieldError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, epc.FieldBeneficiaryName, required.Field)

	_, err = epc.Build(epc.PaymentRecord{BeneficiaryName: "Max Mustermann"})
	require.ErrorAs(t, err, &required)
	assert.Equal(t, epc.FieldIBAN, required.Field)
}

func TestBuild_NoPartialPayloadOnFailure(t *testing.T) {
	rec := validRecord(t)
	rec.PurposeCode = "toolong"

	p, err := epc.Build(rec)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.False(t, errors.Is(err, epc.ErrConflictingRemittanceFields))
}
