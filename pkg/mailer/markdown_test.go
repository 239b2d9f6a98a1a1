package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdown_Render(t *testing.T) {
	t.Parallel()

	md := NewMarkdown()

	t.Run("paragraph with button", func(t *testing.T) {
		t.Parallel()

		out, err := md.Render("Please [!button|Log in](https://ats.example.com) now.")
		require.NoError(t, err)
		require.Equal(t,
			`<p>Please <a href="https://ats.example.com" style="`+DefaultButtonStyle+`">Log in</a> now.</p>`,
			out,
		)
	})

	t.Run("raw html is dropped", func(t *testing.T) {
		t.Parallel()

		out, err := md.Render("<b>bold</b> text")
		require.NoError(t, err)
		require.NotContains(t, out, "<b>")
		require.Contains(t, out, "text")
	})
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a*b_c", want: `a\*b\_c`},
		{in: "[x](y)", want: `\[x\]\(y\)`},
		{in: "Café", want: "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, EscapeMarkdown(tt.in))
		})
	}

	out, err := NewMarkdown().Render(EscapeMarkdown("**not bold** [link](https://x.test)"))
	require.NoError(t, err)
	require.NotContains(t, out, "<strong>")
	require.NotContains(t, out, "<a ")
}
