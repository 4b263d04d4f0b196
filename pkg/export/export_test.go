package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/pipeline"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
)

func fixture() *pipeline.Result {
	node := richtext.Seq(
		richtext.Text("A. Author, "),
		richtext.Emph(richtext.Text("Journal")),
		richtext.Text(", 2020. "),
		richtext.Link("https://doi.org/10.1000/x", richtext.Text("10.1000/x")),
	)
	return &pipeline.Result{
		RunID: "run-1",
		Style: "ieee",
		Items: []pipeline.RenderedItem{
			{
				Key:   "author2020",
				Label: style.Label{Text: "[1]"},
				Node:  node,
				Text:  richtext.Plain(node),
			},
		},
		Problems: []pipeline.Problem{
			{Key: "broken", Err: errors.New(errors.ErrCodeMissingField, "missing title")},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, fixture()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := "[1]  A. Author, Journal, 2020. 10.1000/x\n"
	if buf.String() != want {
		t.Errorf("text = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextNoLabel(t *testing.T) {
	r := fixture()
	r.Items[0].Label = style.Label{}

	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if strings.HasPrefix(buf.String(), " ") {
		t.Errorf("unlabeled line should not be indented: %q", buf.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, fixture()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "*Journal*") {
		t.Errorf("emphasis lost: %q", got)
	}
	if !strings.Contains(got, "[10.1000/x](https://doi.org/10.1000/x)") {
		t.Errorf("link lost: %q", got)
	}
	if !strings.HasPrefix(got, "- [1] ") {
		t.Errorf("label prefix: %q", got)
	}
}

func TestWriteMarkdownSuperscriptLabel(t *testing.T) {
	r := fixture()
	r.Items[0].Label = style.Label{Text: "1", Superscript: true}

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, r); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if !strings.Contains(buf.String(), "<sup>1</sup> ") {
		t.Errorf("superscript label: %q", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, fixture()); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `id="author2020"`) {
		t.Errorf("entry id: %q", got)
	}
	if !strings.Contains(got, "<em>Journal</em>") {
		t.Errorf("emphasis lost: %q", got)
	}
	if !strings.Contains(got, `<a href="https://doi.org/10.1000/x">10.1000/x</a>`) {
		t.Errorf("link lost: %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fixture()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var out struct {
		RunID string `json:"run_id"`
		Style string `json:"style"`
		Items []struct {
			Key      string `json:"key"`
			Label    string `json:"label"`
			Text     string `json:"text"`
			HTML     string `json:"html"`
			Markdown string `json:"markdown"`
		} `json:"items"`
		Problems []struct {
			Key   string `json:"key"`
			Error string `json:"error"`
		} `json:"problems"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Style != "ieee" || len(out.Items) != 1 {
		t.Fatalf("payload = %+v", out)
	}
	if out.Items[0].Label != "[1]" || out.Items[0].HTML == "" {
		t.Errorf("item = %+v", out.Items[0])
	}
	if len(out.Problems) != 1 || out.Problems[0].Key != "broken" {
		t.Errorf("problems = %+v", out.Problems)
	}
}

func TestWriteDispatch(t *testing.T) {
	for _, format := range []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON} {
		var buf bytes.Buffer
		if err := Write(&buf, fixture(), format); err != nil {
			t.Errorf("Write(%s): %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%s): empty output", format)
		}
	}

	err := Write(&bytes.Buffer{}, fixture(), "pdf")
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("invalid format error = %v", err)
	}
}
