package shell

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Encoding is a strict decoder. It reports false instead of substituting invalid input.
type Encoding struct {
	Name   string
	decode func(raw []byte) (string, bool)
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

var (
	// UTF8Sig accepts UTF-8 with an optional byte order mark which is stripped.
	UTF8Sig = Encoding{Name: "utf-8-sig", decode: func(raw []byte) (string, bool) {
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	}}
	UTF8 = Encoding{Name: "utf-8", decode: func(raw []byte) (string, bool) {
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	}}
	GBK  = Encoding{Name: "gbk", decode: doubleByte{enc: simplifiedchinese.GBK, trails: &gbkTrails}.decode}
	Big5 = Encoding{Name: "big5", decode: doubleByte{enc: traditionalchinese.Big5, trails: &big5Trails, overrides: big5Overrides}.decode}
)

// DefaultEncodings is the fallback chain used for process output. The order is significant: the
// first encoding that accepts a line wins.
var DefaultEncodings = []Encoding{UTF8Sig, UTF8, GBK, Big5}

type trailRange struct {
	lo, hi byte
}

// doubleByte is a strict legacy charset: ASCII bytes stand alone, every other byte must lead a
// pair listed in trails. The x/text decoders accept more than that (0x80 as the euro sign, user
// defined areas, HKSCS) and substitute U+FFFD instead of failing.
type doubleByte struct {
	enc       encoding.Encoding
	trails    *[256][]trailRange
	overrides map[uint16]rune
}

func (d doubleByte) valid(lead, trail byte) bool {
	for _, r := range d.trails[lead] {
		if r.lo <= trail && trail <= r.hi {
			return true
		}
	}
	return false
}

func (d doubleByte) decode(raw []byte) (string, bool) {
	dec := d.enc.NewDecoder()

	var out strings.Builder
	out.Grow(len(raw))
	for pos := 0; pos < len(raw); {
		c := raw[pos]
		if c < utf8.RuneSelf {
			out.WriteByte(c)
			pos++
			continue
		}

		if pos+1 >= len(raw) || !d.valid(c, raw[pos+1]) {
			return "", false
		}

		pair := raw[pos : pos+2]
		pos += 2

		if r, ok := d.overrides[uint16(pair[0])<<8|uint16(pair[1])]; ok {
			out.WriteRune(r)
			continue
		}

		text, err := dec.Bytes(pair)
		if err != nil || bytes.ContainsRune(text, utf8.RuneError) {
			return "", false
		}
		out.Write(text)
	}

	return out.String(), true
}

// Decode tries each encoding in order and returns the first successful result.
func Decode(raw []byte, chain []Encoding) (string, error) {
	for _, enc := range chain {
		if text, ok := enc.decode(raw); ok {
			return text, nil
		}
	}

	names := make([]string, len(chain))
	for idx, enc := range chain {
		names[idx] = enc.Name
	}

	return "", &DecodeError{
		Raw:       append([]byte(nil), raw...),
		Encodings: names,
	}
}
