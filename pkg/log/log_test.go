package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/envwiz/pkg/diff"
	"github.com/walteh/envwiz/pkg/validate"
)

func TestLogFinding(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.Disabled)

	l.LogFinding(validate.ValidationError{
		Field:   "N8N_PORT",
		Message: "N8N_PORT must be an integer",
		Type:    validate.SeverityError,
	})

	out := buf.String()
	assert.Contains(t, out, "N8N_PORT", "finding should name the field")
	assert.Contains(t, out, "must be an integer", "finding should carry the message")
}

func TestLogDiffEntry(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.Disabled)

	l.LogDiffEntry(diff.Entry{
		Field:        "N8N_PORT",
		Category:     "general",
		Type:         diff.ChangeModified,
		CurrentValue: "9000",
		DefaultValue: "5678",
	})

	out := buf.String()
	assert.Contains(t, out, "N8N_PORT")
	assert.Contains(t, out, "9000")
	assert.Contains(t, out, "5678", "modified entries show the baseline value")
}

func TestQuietSuppressesConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.Disabled)
	l.SetQuiet(true)

	l.Success("done")
	l.Header("working")
	l.LogFinding(validate.ValidationError{Field: "X", Message: "bad", Type: validate.SeverityError})

	assert.Empty(t, buf.String(), "quiet mode writes nothing to the console")
}

func TestHeaderBanner(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.Disabled)

	l.Header("validating configuration")
	assert.Contains(t, buf.String(), "envwiz", "banner carries the tool name")
}
