// Package report renders ranked gear trains for people and for tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lathegears/solver"
)

// Format selects the rendering.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat accepts text, yaml (or yml) and json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Mode names the search that produced a Section.
type Mode string

const (
	ModeAvailable     Mode = "available"
	ModeAvailablePlus Mode = "available_plus"
)

// Section is the ranking for one pitch and one search mode.
type Section struct {
	Mode     Mode
	PitchMM  float64
	MaxTeeth int
	Results  []solver.Result
}

// Title is the human heading of s.
func (s Section) Title() string {
	if s.Mode == ModeAvailablePlus {
		return fmt.Sprintf("Using available gears plus one gear up to %d teeth", s.MaxTeeth)
	}

	return "Using only available gear options"
}

type resultDoc struct {
	Rank               int     `yaml:"rank" json:"rank"`
	Driving            []int   `yaml:"driving" json:"driving"`
	Driven             []int   `yaml:"driven" json:"driven"`
	ActualPitchMM      float64 `yaml:"actual_pitch_mm" json:"actual_pitch_mm"`
	ErrorPercent       float64 `yaml:"error_percent" json:"error_percent"`
	ErrorMMPerThread   float64 `yaml:"error_mm_per_thread" json:"error_mm_per_thread"`
	ErrorInchPerThread float64 `yaml:"error_in_per_thread" json:"error_in_per_thread"`
	ErrorInchPerFoot   float64 `yaml:"error_in_per_ft" json:"error_in_per_ft"`
}

type sectionDoc struct {
	Mode    Mode        `yaml:"mode" json:"mode"`
	PitchMM float64     `yaml:"pitch_mm" json:"pitch_mm"`
	Results []resultDoc `yaml:"results" json:"results"`
}

func toDoc(s Section) sectionDoc {
	d := sectionDoc{Mode: s.Mode, PitchMM: s.PitchMM, Results: make([]resultDoc, len(s.Results))}
	for i, r := range s.Results {
		d.Results[i] = resultDoc{
			Rank:               i + 1,
			Driving:            r.Driving,
			Driven:             r.Driven,
			ActualPitchMM:      r.ActualPitchMM,
			ErrorPercent:       r.ErrorPercent,
			ErrorMMPerThread:   r.ErrorMMPerThread,
			ErrorInchPerThread: r.ErrorInchPerThread,
			ErrorInchPerFoot:   r.ErrorInchPerFoot,
		}
	}

	return d
}

// Write renders sections to w in format f.
func Write(w io.Writer, f Format, sections []Section) error {
	switch f {
	case FormatText, "":
		for _, s := range sections {
			if err := writeText(w, s); err != nil {
				return err
			}
		}
		return nil

	case FormatYAML:
		docs := make([]sectionDoc, len(sections))
		for i, s := range sections {
			docs[i] = toDoc(s)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		docs := make([]sectionDoc, len(sections))
		for i, s := range sections {
			docs[i] = toDoc(s)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func writeText(w io.Writer, s Section) error {
	if _, err := fmt.Fprintf(w, "\n%s (%g mm/thread):\n", s.Title(), s.PitchMM); err != nil {
		return err
	}
	if len(s.Results) == 0 {
		_, err := fmt.Fprintln(w, "  no gear train found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tdriving\tdriven\tpitch (mm)\terror (%)\terror (mm/thread)\terror (in/thread)\terror (in/ft)\t")
	for i, r := range s.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.5f\t%.4f\t%.5f\t%.6f\t%.5f\t\n",
			i+1, joinTeeth(r.Driving), joinTeeth(r.Driven), r.ActualPitchMM,
			r.ErrorPercent, r.ErrorMMPerThread, r.ErrorInchPerThread, r.ErrorInchPerFoot)
	}

	return tw.Flush()
}

func joinTeeth(teeth []int) string {
	parts := make([]string, len(teeth))
	for i, t := range teeth {
		parts[i] = fmt.Sprint(t)
	}

	return strings.Join(parts, "×")
}
