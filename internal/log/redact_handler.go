package log

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

// MaskValue replaces redacted userinfo and query-parameter values.
const MaskValue = "xxxxx"

// sensitiveParams are query-parameter names whose values are always
// masked. Matching is case-insensitive.
var sensitiveParams = map[string]bool{
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
	"api_key":       true,
	"apikey":        true,
	"key":           true,
	"secret":        true,
	"password":      true,
	"auth":          true,
	"signature":     true,
	"sig":           true,
	"session":       true,
	"sessionid":     true,
	"sid":           true,
}

// urlPattern finds http/https URLs embedded anywhere in an attribute
// value, so redaction also covers values that are whole document lines
// rather than bare URLs.
var urlPattern = regexp.MustCompile(`https?://[^\s"']+`)

// RedactHandler wraps an slog.Handler and masks credentials embedded in
// URL-shaped attribute values before records reach the wrapped handler.
//
// A handler wrapper is used rather than a custom logger because it
// integrates with the standard slog API and composes with any
// underlying handler (text, JSON).
type RedactHandler struct {
	handler slog.Handler
}

// NewRedactHandler creates a RedactHandler wrapping the given handler.
// If handler is nil, slog.Default()'s handler is used.
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added,
// redacted first.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr redacts a single attribute, recursing into groups.
func (h *RedactHandler) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, RedactURLSecrets(a.Value.String()))
	}

	return a
}

// RedactURLSecrets masks userinfo components and sensitive query
// parameters in every http/https URL found within s. Non-URL text is
// returned unchanged. Unparseable URL candidates are also returned
// unchanged: a broken link is recorded verbatim elsewhere, so mangling
// it in logs would only obscure debugging.
func RedactURLSecrets(s string) string {
	if !strings.Contains(s, "http://") && !strings.Contains(s, "https://") {
		return s
	}

	return urlPattern.ReplaceAllStringFunc(s, func(match string) string {
		u, err := url.Parse(match)
		if err != nil {
			return match
		}

		if u.User != nil {
			if _, hasPassword := u.User.Password(); hasPassword {
				u.User = url.UserPassword(u.User.Username(), MaskValue)
			}
		}

		q := u.Query()
		changed := false
		for name := range q {
			if sensitiveParams[strings.ToLower(name)] {
				q.Set(name, MaskValue)
				changed = true
			}
		}
		if changed {
			u.RawQuery = q.Encode()
		}

		return u.String()
	})
}

// NewLogger creates a *slog.Logger that writes text records to w
// through a RedactHandler. Verbose mode enables debug-level records;
// otherwise only warnings and errors are emitted.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewRedactHandler(text))
}
