package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("Strips Script Block", func(t *testing.T) {
		assert.Equal(t, "hello", Sanitize("<script>alert(1)</script>hello"))
	})

	t.Run("Strips Multiline Uppercase Script", func(t *testing.T) {
		input := "before<SCRIPT type=\"text/javascript\">\nvar x = 1;\n</SCRIPT>after"
		assert.Equal(t, "beforeafter", Sanitize(input))
	})

	t.Run("Strips Remaining Tags And Trims", func(t *testing.T) {
		assert.Equal(t, "bold text", Sanitize("  <b>bold</b> <i>text</i>  "))
	})

	t.Run("Keeps Plain Arabic Text", func(t *testing.T) {
		assert.Equal(t, "حفرة كبيرة في الطريق", Sanitize(" حفرة كبيرة في الطريق "))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{
			"",
			"   ",
			"plain",
			"<script>alert(1)</script>hello",
			"<<b>script>alert(1)<</b>/script>",
			"<scr<script>ipt>alert(1)</script>",
			"a < b > c",
			"unclosed <script>alert(1)",
			"<p onclick=\"x\">text</p>\n\t",
			"5 < 6 and 7 > 3",
			"<<>>",
		}
		for _, input := range inputs {
			once := Sanitize(input)
			assert.Equal(t, once, Sanitize(once), "input %q", input)
		}
	})
}

func TestSanitizeHTML(t *testing.T) {
	t.Run("Keeps Allowed Tags", func(t *testing.T) {
		input := "<p>one<br>two <strong>bold</strong> <em>it</em></p><ul><li>a</li></ul><ol><li>b</li></ol>"
		assert.Equal(t, input, SanitizeHTML(input))
	})

	t.Run("Drops Other Tags But Keeps Text", func(t *testing.T) {
		assert.Equal(t, "<p>click me</p>", SanitizeHTML("<p><a href=\"http://x\">click</a> <span>me</span></p>"))
	})

	t.Run("Drops Attributes From Allowed Tags", func(t *testing.T) {
		assert.Equal(t, "<p>x</p>", SanitizeHTML("<P onclick=\"steal()\">x</P>"))
	})

	t.Run("Removes Script Content", func(t *testing.T) {
		assert.Equal(t, "<em>safe</em>", SanitizeHTML("<script>alert(1)</script><em>safe</em>"))
	})
}
