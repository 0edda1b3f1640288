package platform

import "testing"

func TestDescriptionText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Warm   wool hat.</p>", "Warm wool hat."},
		{"<p>Line one</p><p>Line two</p>", "Line one\nLine two"},
		{"Soft<br/>and light", "Soft\nand light"},
		{"<ul><li>Red</li><li>Blue</li></ul>", "Red\nBlue"},
		{"Fish &amp; chips &lt;3", "Fish & chips <3"},
		{"<p>Size:&nbsp;M</p>", "Size: M"},
		{"<style>p{color:red}</style><p>Visible</p><script>alert(1)</script>", "Visible"},
		{"<p>Unclosed <strong>bold", "Unclosed bold"},
	}

	for _, test := range tests {
		result := DescriptionText(test.input)
		if result != test.expected {
			t.Errorf("DescriptionText(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected string
	}{
		{"<p>Short</p>", 20, "Short"},
		{"<p>One</p><p>Two</p>", 20, "One Two"},
		{"<p>A long description text</p>", 7, "A long…"},
		{"<p>Zażółć gęślą jaźń</p>", 6, "Zażółć…"},
		{"<p>No limit</p>", 0, "No limit"},
	}

	for _, test := range tests {
		result := Summary(test.input, test.limit)
		if result != test.expected {
			t.Errorf("Summary(%q, %d) = %q, expected %q", test.input, test.limit, result, test.expected)
		}
	}
}
