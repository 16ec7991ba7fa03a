package textclean

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "This video is great", "This video is great"},
		{"mentions removed", "@john_doe thanks @Alice1", "thanks"},
		{"emoji removed", "Love it 😀🔥🚀 so much", "Love it so much"},
		{"flags removed", "Go team 🇺🇸", "Go team"},
		{"dingbats removed", "Done ✅ ✂ now", "Done now"},
		{"urls removed", "see https://example.com/a?b=c and www.test.org or http://x", "see and or"},
		{"html tags removed", "first<br>second <a href=\"x\">link</a>", "firstsecond link"},
		{"whitespace collapsed", "  a \t\n b   c  ", "a b c"},
		{"unicode spaces collapsed", "a\u00a0\u2003b", "a b"},
		{"accents kept", "café déjà vu", "café déjà vu"},
		{"cjk inside enclosed range removed", "日本語 ok", "ok"},
		{"everything", "@bob Great video! 😀 watch https://youtu.be/x <br>Thanks", "Great video! watch Thanks"},
		{"empty", "", ""},
		{"only noise", "@a 😀 <b></b> http://x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_Properties(t *testing.T) {
	inputs := []string{
		"Hello @world <i>nice</i>   video  ",
		"multi\n\nline\r\ncomment with www.link.com",
		"<p>@x</p> 🤖 ok",
		"   ",
		"already clean text",
	}

	mention := regexp.MustCompile(`@\w+`)
	tag := regexp.MustCompile(`<.*?>`)

	for _, in := range inputs {
		out := Clean(in)

		assert.False(t, mention.MatchString(out), "mention left in %q", out)
		assert.False(t, tag.MatchString(out), "tag left in %q", out)
		assert.Equal(t, strings.TrimSpace(out), out, "untrimmed %q", out)
		assert.NotRegexp(t, `\s\s`, out)
		assert.Equal(t, out, Clean(out), "not idempotent for %q", in)
	}
}
