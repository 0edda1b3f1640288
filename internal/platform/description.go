package platform

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// blockTags end a line of text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "table": true, "blockquote": true,
}

// skippedTags hold no readable text.
var skippedTags = map[string]bool{"script": true, "style": true, "noscript": true}

// DescriptionText converts a product description in HTML to plain text.
// Entities are decoded, runs of spaces collapse to one and block elements
// become line breaks.
func DescriptionText(description string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(description))

	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// end of input, or malformed input: keep what was read
			return normalizeText(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if skippedTags[tag] {
				skipDepth++
			}
			if blockTags[tag] {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if skippedTags[tag] && skipDepth > 0 {
				skipDepth--
			}
			if blockTags[tag] {
				b.WriteByte('\n')
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// Summary returns the first limit runes of the description text, ending with
// an ellipsis when cut.
func Summary(description string, limit int) string {
	text := strings.Join(strings.Fields(DescriptionText(description)), " ")
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + "…"
}

// normalizeText collapses spaces inside lines and drops empty lines.
func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
