package addr

import "testing"

func TestChecksumKnownVectors(t *testing.T) {
	cases := map[string]string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbf03b407c01e7cd3cbea99509d93f8dddc8c6fb": "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	}
	for in, want := range cases {
		if got := Checksum(in); got != want {
			t.Fatalf("Checksum(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestChecksumIdempotent(t *testing.T) {
	mixed := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	if got := Checksum(mixed); got != mixed {
		t.Fatalf("checksumming a checksummed address changed it: %s", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed ":                  "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"bc1pkfeeh92s89gcrr0gr92cku7kkxyy4lg34c8wkfjrp4rsxyc4w4vsffy4eu": "bc1pkfeeh92s89gcrr0gr92cku7kkxyy4lg34c8wkfjrp4rsxyc4w4vsffy4eu",
		" 32MbP3TCF9crsLNLjU5jGLDngHjZuHtYv1 ":                           "32MbP3TCF9crsLNLjU5jGLDngHjZuHtYv1",
		"0xshort":                                                        "0xshort",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
