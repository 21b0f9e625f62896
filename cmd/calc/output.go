package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
)

type computation struct {
	Inputs calculator.Values `json:"inputs" yaml:"inputs"`
	Raw    rawResult         `json:"result" yaml:"result"`
	View   calculator.View   `json:"view" yaml:"view"`
}

// rawResult montos sin redondear, como texto.
type rawResult struct {
	CurrentTotal  string `json:"current_total" yaml:"current_total"`
	AddTotal      string `json:"add_total" yaml:"add_total"`
	TotalQty      string `json:"total_qty" yaml:"total_qty"`
	TotalInvested string `json:"total_invested" yaml:"total_invested"`
	AvgPrice      string `json:"avg_price" yaml:"avg_price"`
}

func newComputation(f *calculator.Form) computation {
	res := f.Result()
	return computation{
		Inputs: f.Values(),
		Raw: rawResult{
			CurrentTotal:  res.CurrentTotal.String(),
			AddTotal:      res.AddTotal.String(),
			TotalQty:      res.TotalQty.String(),
			TotalInvested: res.TotalInvested.String(),
			AvgPrice:      res.AvgPrice.String(),
		},
		View: f.View(),
	}
}

type sanitized struct {
	Input string `json:"input" yaml:"input"`
	Value string `json:"value" yaml:"value"`
}

type check struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Stored   string `json:"stored_avg" yaml:"stored_avg"`
	Computed string `json:"computed_avg" yaml:"computed_avg"`
	Display  string `json:"display" yaml:"display"`
	Match    bool   `json:"match" yaml:"match"`
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type renderer struct {
	format string
	w      io.Writer
}

func newRenderer(format string, w io.Writer) (*renderer, error) {
	switch format {
	case outputText, outputJSON, outputYAML:
		return &renderer{format: format, w: w}, nil
	}
	return nil, fmt.Errorf("formato de salida desconocido %q (text|json|yaml)", format)
}

func (r *renderer) encode(v any) error {
	switch r.format {
	case outputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

func (r *renderer) computation(c computation) error {
	if r.format != outputText {
		return r.encode(c)
	}
	_, err := fmt.Fprintf(r.w,
		"Total actual:     %s\nTotal adicional:  %s\nCantidad total:   %s\nInversión total:  %s\nPrecio promedio:  %s\n",
		c.View.CurrentTotal, c.View.AddTotal, c.View.TotalQty, c.View.TotalInvested, c.View.AvgPrice)
	return err
}

func (r *renderer) sanitized(list []sanitized) error {
	if r.format != outputText {
		return r.encode(list)
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(r.w, "%q -> %q\n", s.Input, s.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) checks(list []check) error {
	if r.format != outputText {
		return r.encode(list)
	}
	for _, c := range list {
		status := "ok"
		if !c.Match {
			status = "DIFERENTE"
		}
		if _, err := fmt.Fprintf(r.w, "%s  %-9s  guardado=%s  recalculado=%s  (%s)\n",
			c.ID, status, c.Stored, c.Computed, c.Display); err != nil {
			return err
		}
	}
	return nil
}
