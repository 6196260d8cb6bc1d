package ft8

import (
	"fmt"
	"strings"

	"github.com/cwsl/ftcore/internal/bitpack"
)

// Variant identifies the decoded shape of a 77-bit FT8 payload (spec §3).
type Variant int

const (
	VariantCQ Variant = iota
	VariantResponse
	VariantConfirm
	VariantFreeText
)

func (v Variant) String() string {
	switch v {
	case VariantCQ:
		return "CQ"
	case VariantResponse:
		return "Response"
	case VariantConfirm:
		return "Confirm"
	case VariantFreeText:
		return "FreeText"
	default:
		return "Unknown"
	}
}

// Message is a decoded or to-be-encoded FT8 message (spec §3 FT8Message).
type Message struct {
	Variant  Variant
	From     string
	To       string
	Grid     string
	Report   string // numeric report, or RRR/73/RR73
	R        bool
	FreeText string
}

// Text renders the canonical WSJT-X text form of the message.
func (m Message) Text() string {
	switch m.Variant {
	case VariantCQ:
		return strings.TrimSpace(fmt.Sprintf("CQ %s %s", m.From, m.Grid))
	case VariantFreeText:
		return m.FreeText
	default:
		rPrefix := ""
		if m.R {
			rPrefix = "R "
		}
		return strings.TrimSpace(fmt.Sprintf("%s %s %s%s", m.To, m.From, rPrefix, m.Report))
	}
}

// Pack encodes a Message into 77 payload bits (spec §4.6).
func Pack(m Message) ([]uint8, error) {
	bits := make([]uint8, 77)

	switch m.Variant {
	case VariantFreeText:
		big, err := packFreeText71(m.FreeText)
		if err != nil {
			return nil, err
		}
		for i := 0; i < 71; i++ {
			bits[i] = uint8(big.ExtractMSB(71, i, 1))
		}
		// bits[71:77) stay zero: n3=0, i3=0.
		return bits, nil

	case VariantCQ:
		callFrom, ok := encodeCallsign28(m.From)
		if !ok {
			return nil, fmt.Errorf("ft8: invalid callsign %q", m.From)
		}
		grid, ok := encodeGrid4(m.Grid)
		if !ok {
			return nil, fmt.Errorf("ft8: invalid grid %q", m.Grid)
		}
		bitpack.AppendBits(bits, 0, uint64(cqToken), 28)
		bitpack.AppendBits(bits, 28, uint64(callFrom), 28)
		// R bit left 0, pad bits left 0.
		bitpack.AppendBits(bits, 57, uint64(grid), 15)
		bitpack.AppendBits(bits, 74, 1, 3) // i3 = 1
		return bits, nil

	case VariantResponse, VariantConfirm:
		callTo, ok := encodeCallsign28(m.To)
		if !ok {
			return nil, fmt.Errorf("ft8: invalid callsign %q", m.To)
		}
		callFrom, ok := encodeCallsign28(m.From)
		if !ok {
			return nil, fmt.Errorf("ft8: invalid callsign %q", m.From)
		}
		report, ok := encodeReport(m.Report)
		if !ok {
			return nil, fmt.Errorf("ft8: invalid report %q", m.Report)
		}
		bitpack.AppendBits(bits, 0, uint64(callTo), 28)
		bitpack.AppendBits(bits, 28, uint64(callFrom), 28)
		if m.R {
			bits[56] = 1
		}
		bitpack.AppendBits(bits, 57, uint64(report), 15)
		bitpack.AppendBits(bits, 74, 1, 3) // i3 = 1
		return bits, nil
	}

	return nil, fmt.Errorf("ft8: unsupported variant %v", m.Variant)
}

// Unpack decodes 77 payload bits into a Message (spec §4.6).
func Unpack(bits []uint8) (Message, error) {
	if len(bits) != 77 {
		return Message{}, fmt.Errorf("ft8: payload must be 77 bits, got %d", len(bits))
	}

	i3 := bits[74]<<2 | bits[75]<<1 | bits[76]

	if i3 == 0 {
		text, err := unpackFreeText71(bits[:71])
		if err != nil {
			return Message{}, err
		}
		return Message{Variant: VariantFreeText, FreeText: text}, nil
	}

	callTo := uint32(bitpack.Extract(packFrom01(bits[0:28]), 0, 28))
	callFrom := uint32(bitpack.Extract(packFrom01(bits[28:56]), 0, 28))
	r := bits[56] != 0
	reportCode := uint16(bitpack.Extract(packFrom01(bits[57:72]), 0, 15))

	if callTo >= cqToken-3 {
		grid := decodeGrid4(reportCode)
		return Message{
			Variant: VariantCQ,
			From:    decodeCallsign28(callFrom),
			Grid:    grid,
		}, nil
	}

	report := decodeReport(reportCode)
	variant := VariantResponse
	if report == "RRR" || report == "73" || report == "RR73" {
		variant = VariantConfirm
	}
	return Message{
		Variant: variant,
		To:      decodeCallsign28(callTo),
		From:    decodeCallsign28(callFrom),
		R:       r,
		Report:  report,
	}, nil
}

// packFrom01 packs a 0/1 bit slice (MSB-first, one byte per bit) into a
// compact byte array, for reuse with bitpack.Extract's byte-packed form.
func packFrom01(bits01 []uint8) []uint8 {
	n := len(bits01)
	out := make([]uint8, (n+7)/8)
	for i, b := range bits01 {
		if b != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out
}
