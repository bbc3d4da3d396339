package mailto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/validator"
)

const recipient = "artist@example.com"

func johnDoe() mailto.FormSubmission {
	return mailto.FormSubmission{
		Name:            "John Doe",
		Email:           "john@example.com",
		SelectedProduct: "Rainbow Sunset Painting",
		Message:         "I love this painting!",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*mailto.FormSubmission)
		opts   []mailto.ValidateOption
		fields []string
	}{
		{name: "valid", mutate: func(*mailto.FormSubmission) {}},
		{name: "empty message is fine", mutate: func(s *mailto.FormSubmission) { s.Message = "" }},
		{name: "empty name", mutate: func(s *mailto.FormSubmission) { s.Name = "" }, fields: []string{"name"}},
		{name: "whitespace name counts as a value", mutate: func(s *mailto.FormSubmission) { s.Name = "   " }},
		{name: "name too long", mutate: func(s *mailto.FormSubmission) { s.Name = strings.Repeat("a", mailto.MaxNameLength+1) }, fields: []string{"name"}},
		{name: "name at limit", mutate: func(s *mailto.FormSubmission) { s.Name = strings.Repeat("é", mailto.MaxNameLength) }},
		{name: "dotless email domain", mutate: func(s *mailto.FormSubmission) { s.Email = "john@localhost" }},
		{
			name:   "email too long",
			mutate: func(s *mailto.FormSubmission) { s.Email = strings.Repeat("a", mailto.MaxEmailLength) + "@example.com" },
			fields: []string{"email"},
		},
		{
			name:   "message too long",
			mutate: func(s *mailto.FormSubmission) { s.Message = strings.Repeat("x", mailto.MaxMessageLength+1) },
			fields: []string{"message"},
		},
		{name: "empty email", mutate: func(s *mailto.FormSubmission) { s.Email = "" }, fields: []string{"email"}},
		{name: "malformed email", mutate: func(s *mailto.FormSubmission) { s.Email = "john.example.com" }, fields: []string{"email"}},
		{name: "empty product", mutate: func(s *mailto.FormSubmission) { s.SelectedProduct = "" }, fields: []string{"product"}},
		{
			name:   "product outside allowed options",
			mutate: func(s *mailto.FormSubmission) { s.SelectedProduct = "Mountain Majesty" },
			opts:   []mailto.ValidateOption{mailto.AllowProducts("Rainbow Sunset Painting", "other")},
			fields: []string{"product"},
		},
		{
			name:   "catch-all allowed",
			mutate: func(s *mailto.FormSubmission) { s.SelectedProduct = "other" },
			opts:   []mailto.ValidateOption{mailto.AllowProducts("Rainbow Sunset Painting", "other")},
		},
		{
			name:   "everything missing",
			mutate: func(s *mailto.FormSubmission) { *s = mailto.FormSubmission{} },
			fields: []string{"name", "email", "product"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sub := johnDoe()
			tt.mutate(&sub)

			err := mailto.Validate(sub, tt.opts...)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, mailto.ErrValidationBlocked)
			assert.Equal(t, tt.fields, validator.ExtractValidationErrors(err).Fields())
		})
	}
}

func TestBuildMailMessage(t *testing.T) {
	t.Parallel()

	msg := mailto.BuildMailMessage(johnDoe(), recipient)

	t.Run("subject and body", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, recipient, msg.Recipient)
		assert.Equal(t, "Painting Inquiry: Rainbow Sunset Painting", msg.Subject)
		assert.Equal(t, "Name: John Doe\nEmail: john@example.com\nProduct: Rainbow Sunset Painting\n\nMessage:\nI love this painting!", msg.Body)
	})

	t.Run("uri layout", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"mailto:artist@example.com?subject=Painting%20Inquiry%3A%20Rainbow%20Sunset%20Painting"+
				"&body=Name%3A%20John%20Doe%0AEmail%3A%20john%40example.com%0AProduct%3A%20Rainbow%20Sunset%20Painting%0A%0AMessage%3A%0AI%20love%20this%20painting!",
			msg.EncodedURI)
	})

	t.Run("decoded uri contains every value", func(t *testing.T) {
		t.Parallel()
		parsed, err := mailto.ParseURI(msg.EncodedURI)
		require.NoError(t, err)
		for _, v := range []string{"John Doe", "john@example.com", "Rainbow Sunset Painting", "I love this painting!"} {
			assert.Contains(t, parsed.Body, v)
		}
		assert.Contains(t, parsed.Subject, "Rainbow Sunset Painting")
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		again := mailto.BuildMailMessage(johnDoe(), recipient)
		assert.Equal(t, msg.EncodedURI, again.EncodedURI)
		assert.Equal(t, msg, again)
	})

	t.Run("values interpolated verbatim", func(t *testing.T) {
		t.Parallel()
		sub := johnDoe()
		sub.Message = "<b>bold</b> & more"
		m := mailto.BuildMailMessage(sub, recipient)
		assert.True(t, strings.HasSuffix(m.Body, "\n<b>bold</b> & more"))
	})
}

func TestEncodeComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"A-Z_a.z!~*'()09", "A-Z_a.z!~*'()09"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"x&subject=y", "x%26subject%3Dy"},
		{"line1\nline2\r\n", "line1%0Aline2%0D%0A"},
		{"50% off?#", "50%25%20off%3F%23"},
		{"é", "%C3%A9"},
		{"🎨", "%F0%9F%8E%A8"},
		{"/:;@,", "%2F%3A%3B%40%2C"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mailto.EncodeComponent(tt.in), tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Painting Inquiry: other",
		"a+b = c & d?",
		"Name: Zoë\nEmail: zoe@example.com\n\nMessage:\n100% 😍 <script>x</script>",
		"tabs\tand\r\nwindows lines",
		"%20 already looks encoded",
	}

	for _, in := range inputs {
		out, err := mailto.DecodeComponent(mailto.EncodeComponent(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	t.Run("message fields survive", func(t *testing.T) {
		t.Parallel()
		sub := mailto.FormSubmission{
			Name:            "Zoë & Ana",
			Email:           "zoe+art@example.com",
			SelectedProduct: "other",
			Message:         "Hi!\nCan you do 24\" × 36\"? 50% deposit ok.",
		}
		msg := mailto.BuildMailMessage(sub, recipient)
		parsed, err := mailto.ParseURI(msg.EncodedURI)
		require.NoError(t, err)
		assert.Equal(t, msg.Subject, parsed.Subject)
		assert.Equal(t, msg.Body, parsed.Body)
		assert.Equal(t, recipient, parsed.Recipient)
		assert.Equal(t, msg, parsed)
	})
}

func TestDecodeComponent(t *testing.T) {
	t.Parallel()

	out, err := mailto.DecodeComponent("a+b%20c")
	require.NoError(t, err)
	assert.Equal(t, "a+b c", out)

	_, err = mailto.DecodeComponent("bad%zz")
	assert.ErrorIs(t, err, mailto.ErrInvalidEncoding)
}

func TestParseURI(t *testing.T) {
	t.Parallel()

	t.Run("header names are case insensitive", func(t *testing.T) {
		t.Parallel()
		msg, err := mailto.ParseURI("MAILTO:a@b.co?Subject=Hi%20there&BODY=x&cc=ignored")
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", msg.Recipient)
		assert.Equal(t, "Hi there", msg.Subject)
		assert.Equal(t, "x", msg.Body)
	})

	t.Run("recipient only", func(t *testing.T) {
		t.Parallel()
		msg, err := mailto.ParseURI("mailto:a@b.co")
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", msg.Recipient)
		assert.Empty(t, msg.Subject)
	})

	for _, bad := range []string{"", "mail", "https://example.com", "mailto:", "mailto:?subject=x", "mailto:a@b.co?body=%G1"} {
		_, err := mailto.ParseURI(bad)
		assert.ErrorIs(t, err, mailto.ErrInvalidURI, bad)
	}
}

func TestFormSubmissionNormalize(t *testing.T) {
	t.Parallel()

	sub := mailto.FormSubmission{
		Name:            "John\r\n Doe",
		Email:           "  john@example.com\n",
		SelectedProduct: "Golden Fields",
		Message:         "  line one\nline two  ",
	}
	got := sub.Normalize()

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, sub.SelectedProduct, got.SelectedProduct)
	assert.Equal(t, sub.Message, got.Message)
	assert.Equal(t, johnDoe(), johnDoe().Normalize())
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	got := mailto.PlainText(mailto.FormSubmission{
		Name:            "<b>John</b>\n  Doe",
		Email:           " John@Example.COM ",
		SelectedProduct: "Golden\nFields",
		Message:         "Hi &lt;script&gt;alert(1)&lt;/script&gt;\nIs it framed?\x07",
	})

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "Golden Fields", got.SelectedProduct)
	assert.Equal(t, "Hi \nIs it framed?", got.Message)
	assert.Equal(t, johnDoe(), mailto.PlainText(johnDoe()))
}
