// Package export writes formatted bibliographies in the supported
// output formats: plain text, Markdown, HTML, and JSON.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"

	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/pipeline"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
)

// Format constants for output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:     true,
	FormatMarkdown: true,
	FormatHTML:     true,
	FormatJSON:     true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, markdown, html, json)", format)
	}
	return nil
}

// Write renders the result to w in the given format.
func Write(w io.Writer, result *pipeline.Result, format string) error {
	switch format {
	case FormatText:
		return WriteText(w, result)
	case FormatMarkdown:
		return WriteMarkdown(w, result)
	case FormatHTML:
		return WriteHTML(w, result)
	case FormatJSON:
		return WriteJSON(w, result)
	default:
		return ValidateFormat(format)
	}
}

// WriteFile writes the result to a file at path.
// This is a convenience wrapper around [Write] for file-based output.
func WriteFile(path string, result *pipeline.Result, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, result, format)
}

// WriteText writes one line per entry: the label, two spaces, then the
// plain-text reference. Entries without a label print the text alone.
func WriteText(w io.Writer, result *pipeline.Result) error {
	for _, item := range result.Items {
		var err error
		if item.Label.Text == "" {
			_, err = fmt.Fprintln(w, item.Text)
		} else {
			_, err = fmt.Fprintf(w, "%s  %s\n", item.Label.Text, item.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdown writes a Markdown list, one entry per item, preserving
// emphasis, bold, superscript, and hyperlinks.
func WriteMarkdown(w io.Writer, result *pipeline.Result) error {
	for _, item := range result.Items {
		if _, err := fmt.Fprintf(w, "- %s%s\n",
			markdownLabel(item.Label), richtext.Markdown(item.Node)); err != nil {
			return err
		}
	}
	return nil
}

func markdownLabel(l style.Label) string {
	if l.Text == "" {
		return ""
	}
	if l.Superscript {
		return "<sup>" + l.Text + "</sup> "
	}
	return l.Text + " "
}

// WriteHTML writes an HTML fragment: a div per entry with the citation
// key as its id, so documents can link to individual references.
func WriteHTML(w io.Writer, result *pipeline.Result) error {
	if _, err := fmt.Fprintln(w, `<div class="bibliography">`); err != nil {
		return err
	}
	for _, item := range result.Items {
		if _, err := fmt.Fprintf(w, "  <div class=\"reference\" id=\"%s\">%s%s</div>\n",
			html.EscapeString(item.Key), htmlLabel(item.Label), richtext.HTML(item.Node)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</div>")
	return err
}

func htmlLabel(l style.Label) string {
	if l.Text == "" {
		return ""
	}
	text := html.EscapeString(l.Text)
	if l.Superscript {
		return `<span class="label"><sup>` + text + `</sup></span> `
	}
	return `<span class="label">` + text + `</span> `
}

// jsonResult is the JSON output shape. It carries every render target
// per item, so consumers pick the one they need without re-running the
// pipeline.
type jsonResult struct {
	RunID    string        `json:"run_id"`
	Style    string        `json:"style"`
	Items    []jsonItem    `json:"items"`
	Problems []jsonProblem `json:"problems,omitempty"`
}

type jsonItem struct {
	Key         string `json:"key"`
	Label       string `json:"label,omitempty"`
	Superscript bool   `json:"superscript,omitempty"`
	Text        string `json:"text"`
	HTML        string `json:"html"`
	Markdown    string `json:"markdown"`
}

type jsonProblem struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// WriteJSON encodes the result as indented JSON.
func WriteJSON(w io.Writer, result *pipeline.Result) error {
	out := jsonResult{
		RunID: result.RunID,
		Style: result.Style,
		Items: make([]jsonItem, len(result.Items)),
	}
	for i, item := range result.Items {
		out.Items[i] = jsonItem{
			Key:         item.Key,
			Label:       item.Label.Text,
			Superscript: item.Label.Superscript,
			Text:        item.Text,
			HTML:        richtext.HTML(item.Node),
			Markdown:    richtext.Markdown(item.Node),
		}
	}
	for _, p := range result.Problems {
		out.Problems = append(out.Problems, jsonProblem{Key: p.Key, Error: p.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
