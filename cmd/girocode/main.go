// Command girocode builds an EPC QR code for a single SEPA credit
// transfer and writes it to an image file. The canonical payload is
// printed to stdout so it can be inspected or piped elsewhere.
//
// Usage:
//
//	girocode [flags] <beneficiary-name> <iban>
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/girohub/epc-qr/internal/domain/qrcode"
	"github.com/girohub/epc-qr/internal/epc"
	"github.com/girohub/epc-qr/internal/infrastructure/qrgenerator"
)

const defaultSize = 256

func main() {
	bic := flag.String("bic", "", "BIC of the beneficiary bank (8 or 11 characters)")
	amount := flag.String("amount", "", "amount in EUR, e.g. 12.50")
	purpose := flag.String("purpose", "", "SEPA purpose code, up to 4 letters")
	reference := flag.String("reference", "", "structured creditor reference (excludes -text)")
	text := flag.String("text", "", "unstructured remittance text (excludes -reference)")
	info := flag.String("info", "", "information shown to the payer")
	format := flag.String("format", "png", "image format: png or qoi")
	out := flag.String("out", "", "output file name (derived from the transfer when empty)")
	size := flag.Int("size", defaultSize, "image size in pixels")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: girocode [flags] <beneficiary-name> <iban>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	imgFormat, ok := qrcode.ParseFormat(*format)
	if !ok {
		fatal(fmt.Errorf("unsupported image format %q", *format))
	}

	name := flag.Arg(0)
	// Accept the paper format with grouping spaces.
	iban := strings.ReplaceAll(flag.Arg(1), " ", "")

	rec := epc.PaymentRecord{
		BeneficiaryName:     name,
		IBAN:                iban,
		BIC:                 *bic,
		PurposeCode:         *purpose,
		RemittanceReference: *reference,
		RemittanceText:      *text,
		InformationText:     *info,
	}
	if *amount != "" {
		a, err := epc.ParseAmount(*amount)
		if err != nil {
			fatal(err)
		}
		rec.Amount = &a
	}

	payload, err := epc.Build(rec)
	if err != nil {
		fatal(err)
	}

	fmt.Println(payload.String())

	img, err := qrgenerator.NewGenerator(defaultSize).Generate(payload.String(), imgFormat, *size)
	if err != nil {
		fatal(err)
	}

	fileName := *out
	if fileName == "" {
		fileName = deriveFileName(rec, imgFormat)
	}
	if err := os.WriteFile(fileName, img, 0o644); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "girocode:", err)
	os.Exit(1)
}

// deriveFileName builds epc-[bic-]<iban>[-remittance]-qr-code.<ext>
// with path separators and spaces replaced.
func deriveFileName(rec epc.PaymentRecord, format qrcode.Format) string {
	parts := []string{"epc"}
	if rec.BIC != "" {
		parts = append(parts, rec.BIC)
	}
	parts = append(parts, rec.IBAN)
	if rec.RemittanceReference != "" {
		parts = append(parts, rec.RemittanceReference)
	} else if rec.RemittanceText != "" {
		parts = append(parts, rec.RemittanceText)
	}
	parts = append(parts, "qr-code")

	name := strings.Join(parts, "-") + "." + string(format)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '_'
		}
		return r
	}, name)
}
