package log

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Feedback provides user-friendly notifications about template store
// changes, the console analogue of the wizard's toast messages
type Feedback struct {
	log zerolog.Logger
}

// 🎨 TemplateChangeType represents the kind of store change
type TemplateChangeType int

const (
	TemplateCreated TemplateChangeType = iota
	TemplateUpdated
	TemplateDeleted
	TemplateError
)

// 🖼️ TemplateChange represents one change to the template store
type TemplateChange struct {
	Type        TemplateChangeType
	Name        string
	Description string
	Err         error
}

// 🎯 NewFeedback creates a new feedback printer
func NewFeedback(ctx context.Context) *Feedback {
	return &Feedback{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogTemplateChange prints a store change with the matching prefix
func (f *Feedback) LogTemplateChange(change TemplateChange) {
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case TemplateCreated:
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case TemplateUpdated:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "📝"})
	case TemplateDeleted:
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🗑️"})
	case TemplateError:
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	default:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"})
	}

	msg := change.Name
	if change.Description != "" {
		msg += " — " + change.Description
	}
	printer.Println(msg)
	if change.Err != nil {
		pterm.Error.Println(change.Err)
	}

	f.log.Debug().
		Str("template", change.Name).
		Int("change", int(change.Type)).
		Err(change.Err).
		Msg("template store change")
}
