package shell

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"ascii", []byte("plain text\n"), "plain text\n"},
		{"utf-8", []byte("grüße"), "grüße"},
		{"utf-8 with bom", []byte("\xef\xbb\xbfhello"), "hello"},
		{"gbk", []byte{0xc4, 0xe3, 0xba, 0xc3}, "你好"},
		{"gbk mixed with ascii", []byte{'o', 'k', ' ', 0xc4, 0xe3, '\n'}, "ok 你\n"},
		{"big5 when gbk rejects the pair", []byte{0xa1, 0x45}, "\u2022"},
		{"empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, DefaultEncodings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeChainOrder(t *testing.T) {
	// 中文 in Big5. These bytes are valid GBK as well, so GBK wins in the default chain.
	raw := []byte{0xa4, 0xa4, 0xa4, 0xe5}

	asGBK, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Decode(raw, DefaultEncodings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != string(asGBK) {
		t.Errorf("Decode() = %q, want the GBK reading %q", got, asGBK)
	}

	got, err = Decode(raw, []Encoding{UTF8, Big5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "中文" {
		t.Errorf("Decode() = %q, want %q", got, "中文")
	}
}

func TestDecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"0xff", []byte{0xff}},
		{"euro byte", []byte{0x80}},
		{"euro byte after text", []byte("cost \x80\n")},
		{"user defined area", []byte{0xfe, 0xfe}},
		{"truncated pair", []byte{0xc4}},
		{"ascii trail outside both tables", []byte{0xc4, 0x30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, DefaultEncodings)

			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode() = %q, %v, want *DecodeError", got, err)
			}

			if len(decErr.Encodings) != 4 || decErr.Encodings[2] != "gbk" {
				t.Errorf("Encodings = %v", decErr.Encodings)
			}
		})
	}
}

func TestDoubleByteRejectsWhatXTextAccepts(t *testing.T) {
	for _, raw := range [][]byte{{0x80}, {0xfe, 0xfe}} {
		if text, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw); err != nil || len(text) == 0 {
			t.Fatalf("x/text GBK no longer accepts % x", raw)
		}

		if got, ok := GBK.decode(raw); ok {
			t.Errorf("GBK accepted % x as %q", raw, got)
		}
		if got, ok := Big5.decode(raw); ok {
			t.Errorf("Big5 accepted % x as %q", raw, got)
		}
	}
}

func TestBig5LegacyMapping(t *testing.T) {
	tests := []struct {
		raw  []byte
		want string
	}{
		{[]byte{0xa4, 0xa4}, "中"},
		{[]byte{0xa1, 0x45}, "\u2022"},
		{[]byte{0xa2, 0x44}, "\u00a5"},
		{[]byte{0xc6, 0xe7}, "\u3083"},
		{[]byte{0xc7, 0xf3}, "\u2474"},
	}

	for _, tt := range tests {
		got, ok := Big5.decode(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("Big5 % x = %q, %v, want %q", tt.raw, got, ok, tt.want)
		}
	}
}

func TestDecodeEmptyChain(t *testing.T) {
	if _, err := Decode([]byte("abc"), nil); err == nil {
		t.Fatal("expected an error without encodings")
	}
}
