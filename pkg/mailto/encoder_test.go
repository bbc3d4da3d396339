package mailto_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/showcase/pkg/logger"
	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/statemachine"
)

type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) Open(ctx context.Context, uri string) error {
	args := m.Called(ctx, uri)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func newEncoder(t *testing.T, opts ...mailto.Option) *mailto.Encoder {
	t.Helper()
	enc, err := mailto.NewEncoder(recipient, append([]mailto.Option{mailto.WithLogger(logger.Discard())}, opts...)...)
	require.NoError(t, err)
	return enc
}

func TestNewEncoder(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "artist", "artist@", "Artist <artist@example.com>"} {
		_, err := mailto.NewEncoder(bad)
		assert.ErrorIs(t, err, mailto.ErrInvalidRecipient, bad)
	}

	enc, err := mailto.NewEncoder(recipient)
	require.NoError(t, err)
	assert.Equal(t, recipient, enc.Recipient())
}

func TestEncoderSubmit(t *testing.T) {
	t.Parallel()

	t.Run("dispatches and confirms once", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		want := mailto.BuildMailMessage(johnDoe(), recipient)

		opener := &MockOpener{}
		opener.On("Open", ctx, want.EncodedURI).Return(nil).Once()
		notifier := &MockNotifier{}
		notifier.On("Notify", ctx, mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "Thank you")
		})).Return(nil).Once()

		enc := newEncoder(t, mailto.WithOpener(opener), mailto.WithNotifier(notifier))
		require.NoError(t, enc.Submit(ctx, johnDoe()))

		opener.AssertExpectations(t)
		notifier.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "Notify", 1)
	})

	t.Run("walks every state", func(t *testing.T) {
		t.Parallel()
		var path []string
		enc := newEncoder(t, mailto.WithTransitionListener(func(_ context.Context, _, to statemachine.State, _ statemachine.Event) {
			path = append(path, to.Name())
		}))

		require.NoError(t, enc.Submit(context.Background(), johnDoe()))
		assert.Equal(t, []string{"validating", "building", "dispatching", "confirmed"}, path)
	})

	t.Run("empty name never dispatches", func(t *testing.T) {
		t.Parallel()
		opener := &MockOpener{}
		notifier := &MockNotifier{}
		var path []string
		enc := newEncoder(t,
			mailto.WithOpener(opener),
			mailto.WithNotifier(notifier),
			mailto.WithTransitionListener(func(_ context.Context, _, to statemachine.State, _ statemachine.Event) {
				path = append(path, to.Name())
			}),
		)

		sub := johnDoe()
		sub.Name = ""
		err := enc.Submit(context.Background(), sub)
		require.Error(t, err)
		assert.ErrorIs(t, err, mailto.ErrValidationBlocked)
		assert.Equal(t, []string{"validating", "rejected"}, path)

		opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("opener failure is logged not returned", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		opener := &MockOpener{}
		opener.On("Open", mock.Anything, mock.Anything).Return(errors.New("no mail client"))
		notifier := &MockNotifier{}
		notifier.On("Notify", mock.Anything, mailto.Confirmation).Return(nil).Once()

		enc := newEncoder(t,
			mailto.WithOpener(opener),
			mailto.WithNotifier(notifier),
			mailto.WithLogger(logger.New(logger.WithOutput(buf))),
		)
		require.NoError(t, enc.Submit(context.Background(), johnDoe()))
		notifier.AssertExpectations(t)
		assert.Contains(t, buf.String(), "mail client open failed")
		assert.NotContains(t, buf.String(), "I love this painting")
	})

	t.Run("notifier failure is returned", func(t *testing.T) {
		t.Parallel()
		notifier := &MockNotifier{}
		notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("closed"))
		enc := newEncoder(t, mailto.WithNotifier(notifier))

		err := enc.Submit(context.Background(), johnDoe())
		assert.ErrorIs(t, err, mailto.ErrNotifyFailed)
	})

	t.Run("identical submissions give identical uris", func(t *testing.T) {
		t.Parallel()
		var uris []string
		var mu sync.Mutex
		opener := mailtoOpener(func(uri string) {
			mu.Lock()
			uris = append(uris, uri)
			mu.Unlock()
		})
		enc := newEncoder(t, mailto.WithOpener(opener))

		require.NoError(t, enc.Submit(context.Background(), johnDoe()))
		require.NoError(t, enc.Submit(context.Background(), johnDoe()))
		require.Len(t, uris, 2)
		assert.Equal(t, uris[0], uris[1])
	})

	t.Run("concurrent submissions are independent", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		seen := map[string]int{}
		enc := newEncoder(t, mailto.WithOpener(mailtoOpener(func(uri string) {
			mu.Lock()
			seen[uri]++
			mu.Unlock()
		})))

		var wg sync.WaitGroup
		names := []string{"Ann", "Bob", "Cy", "Di"}
		for _, name := range names {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				sub := johnDoe()
				sub.Name = name
				assert.NoError(t, enc.Submit(context.Background(), sub))
			}(name)
		}
		wg.Wait()
		assert.Len(t, seen, len(names))
	})

	t.Run("allowed products", func(t *testing.T) {
		t.Parallel()
		enc := newEncoder(t, mailto.WithValidation(mailto.AllowProducts("Golden Fields", "other")))
		err := enc.Submit(context.Background(), johnDoe())
		assert.ErrorIs(t, err, mailto.ErrValidationBlocked)
	})
}

func TestEncoderSanitizer(t *testing.T) {
	t.Parallel()

	sub := johnDoe()
	sub.Message = "Nice<script>alert(1)</script> work\x07!"

	t.Run("passthrough by default", func(t *testing.T) {
		t.Parallel()
		msg, err := newEncoder(t).Compose(sub)
		require.NoError(t, err)
		assert.Contains(t, msg.Body, "<script>")
	})

	t.Run("plain text sanitizer", func(t *testing.T) {
		t.Parallel()
		msg, err := newEncoder(t, mailto.WithSanitizer(mailto.PlainText)).Compose(sub)
		require.NoError(t, err)
		assert.NotContains(t, msg.Body, "<script>")
		assert.NotContains(t, msg.Body, "alert")
		assert.NotContains(t, msg.Body, "\x07")
		assert.Contains(t, msg.Body, "Nice work!")
	})

	t.Run("entity encoded markup does not survive", func(t *testing.T) {
		t.Parallel()
		s := johnDoe()
		s.Message = "hi &lt;script&gt;alert(1)&lt;/script&gt;"
		msg, err := newEncoder(t, mailto.WithSanitizer(mailto.PlainText)).Compose(s)
		require.NoError(t, err)
		assert.NotContains(t, msg.Body, "<script")
		assert.NotContains(t, msg.Body, "alert")
	})

	t.Run("subject stays on one line", func(t *testing.T) {
		t.Parallel()
		s := johnDoe()
		s.SelectedProduct = "other\r\nBcc: spam@example.com"
		msg, err := newEncoder(t, mailto.WithSanitizer(mailto.PlainText)).Compose(s)
		require.NoError(t, err)
		assert.Equal(t, "Painting Inquiry: other Bcc: spam@example.com", msg.Subject)
	})

	t.Run("email is normalized", func(t *testing.T) {
		t.Parallel()
		s := johnDoe()
		s.Email = "John@Example.COM"
		msg, err := newEncoder(t, mailto.WithSanitizer(mailto.PlainText)).Compose(s)
		require.NoError(t, err)
		assert.Contains(t, msg.Body, "Email: john@example.com\n")
	})

	t.Run("sanitized empty name is rejected", func(t *testing.T) {
		t.Parallel()
		s := johnDoe()
		s.Name = "<b></b>"
		_, err := newEncoder(t, mailto.WithSanitizer(mailto.PlainText)).Compose(s)
		assert.ErrorIs(t, err, mailto.ErrValidationBlocked)
	})

	t.Run("browser normalization always applies", func(t *testing.T) {
		t.Parallel()
		s := johnDoe()
		s.Email = " john@example.com\r\n"
		msg, err := newEncoder(t).Compose(s)
		require.NoError(t, err)
		assert.Equal(t, mailto.BuildMailMessage(johnDoe(), recipient), msg)
	})
}

func TestEncoderWith(t *testing.T) {
	t.Parallel()

	base := newEncoder(t)
	var got string
	scoped := base.With(
		mailto.WithOpener(mailtoOpener(func(uri string) { got = uri })),
		mailto.WithConfirmation("Thank you, John"),
	)
	require.NoError(t, scoped.Submit(context.Background(), johnDoe()))
	assert.True(t, strings.HasPrefix(got, "mailto:"+recipient+"?subject="))

	got = ""
	require.NoError(t, base.Submit(context.Background(), johnDoe()))
	assert.Empty(t, got, "base encoder must keep its own opener")
}

type mailtoOpener func(uri string)

func (f mailtoOpener) Open(_ context.Context, uri string) error {
	f(uri)
	return nil
}
