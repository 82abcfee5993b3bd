package document

import "testing"

// TestClassify tests the link line classification rules.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		line          string
		wantOK        bool
		wantRawURL    string
		wantCanonical string
	}{
		{
			name:          "bulleted https link",
			line:          "* https://example.com/page",
			wantOK:        true,
			wantRawURL:    "https://example.com/page",
			wantCanonical: "* https://example.com/page",
		},
		{
			name:          "bulleted http link",
			line:          "* http://example.com",
			wantOK:        true,
			wantRawURL:    "http://example.com",
			wantCanonical: "* http://example.com",
		},
		{
			name:          "bulleted link with surrounding whitespace",
			line:          "   * https://example.com   ",
			wantOK:        true,
			wantRawURL:    "https://example.com",
			wantCanonical: "* https://example.com",
		},
		{
			name:          "bulleted link with extra space after bullet",
			line:          "*   https://example.com",
			wantOK:        true,
			wantRawURL:    "https://example.com",
			wantCanonical: "* https://example.com",
		},
		{
			name:          "bare https line",
			line:          "https://example.com",
			wantOK:        true,
			wantRawURL:    "https://example.com",
			wantCanonical: "* https://example.com",
		},
		{
			name:          "bare http line",
			line:          "http://example.com",
			wantOK:        true,
			wantRawURL:    "http://example.com",
			wantCanonical: "* http://example.com",
		},
		{
			// Known imprecision: prose before the URL is kept in the
			// raw URL when the line is bulleted.
			name:          "bulleted line with prose before URL",
			line:          "* see http://example.com",
			wantOK:        true,
			wantRawURL:    "see http://example.com",
			wantCanonical: "* see http://example.com",
		},
		{
			name:   "prose starting with bare https word does not classify",
			line:   "https is a protocol",
			wantOK: false,
		},
		{
			// Known quirk: anything starting with the literal scheme
			// prefix classifies, even if the rest is prose.
			name:          "line starting with scheme prefix always classifies",
			line:          "https://broken url with spaces",
			wantOK:        true,
			wantRawURL:    "https://broken url with spaces",
			wantCanonical: "* https://broken url with spaces",
		},
		{
			name:   "bulleted line without URL",
			line:   "* not a real url",
			wantOK: false,
		},
		{
			name:   "plain prose",
			line:   "see the links below",
			wantOK: false,
		},
		{
			name:   "heading",
			line:   "# Links",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
		{
			name:   "bulleted ftp link does not classify",
			line:   "* ftp://example.com",
			wantOK: false,
		},
		{
			name:   "bullet without space is not a bullet",
			line:   "*https://example.com",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			link, ok := Classify(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, expected %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if link.RawURL != tt.wantRawURL {
				t.Errorf("raw URL = %q, expected %q", link.RawURL, tt.wantRawURL)
			}
			if link.CanonicalLine != tt.wantCanonical {
				t.Errorf("canonical line = %q, expected %q", link.CanonicalLine, tt.wantCanonical)
			}
		})
	}
}
