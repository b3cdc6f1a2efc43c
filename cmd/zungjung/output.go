package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"zungjung"
)

// writer renders scored hands in one output format.
type writer interface {
	Write(hand string, res *zungjung.Result) error
	Flush() error
}

func newWriter(format string, w io.Writer) (writer, error) {
	switch format {
	case "text":
		return &textWriter{w: w}, nil
	case "yaml":
		return &yamlWriter{w: w}, nil
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// handReport is the structured form of one scored hand.
type handReport struct {
	Hand     string          `json:"hand" yaml:"hand"`
	Complete bool            `json:"complete" yaml:"complete"`
	Shape    string          `json:"shape,omitempty" yaml:"shape,omitempty"`
	Sets     []string        `json:"sets,omitempty" yaml:"sets,omitempty"`
	Yaku     []zungjung.Yaku `json:"yaku,omitempty" yaml:"yaku,omitempty"`
	Total    int             `json:"total" yaml:"total"`
}

func newReport(hand string, res *zungjung.Result) handReport {
	report := handReport{Hand: hand}
	if res == nil {
		return report
	}
	report.Complete = true
	report.Shape = res.Shape.String()
	for _, s := range res.Sets {
		report.Sets = append(report.Sets, s.String())
	}
	report.Yaku = res.Yaku
	report.Total = res.Score()
	return report
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(hand string, res *zungjung.Result) error {
	_, err := fmt.Fprintf(t.w, "Hand: %s\n%s\n", hand, zungjung.FormatResult(res))
	return err
}

func (t *textWriter) Flush() error { return nil }

// yamlWriter buffers reports and emits them as one YAML sequence.
type yamlWriter struct {
	w       io.Writer
	reports []handReport
}

func (y *yamlWriter) Write(hand string, res *zungjung.Result) error {
	y.reports = append(y.reports, newReport(hand, res))
	return nil
}

func (y *yamlWriter) Flush() error {
	if len(y.reports) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.reports); err != nil {
		return err
	}
	return enc.Close()
}

// jsonWriter emits one JSON object per line.
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(hand string, res *zungjung.Result) error {
	return j.enc.Encode(newReport(hand, res))
}

func (j *jsonWriter) Flush() error { return nil }
