package driver

import (
	"encoding/json"
	"fmt"

	"axscript/internal/diag"
	"axscript/internal/observ"
	"axscript/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic records the phase report as an OBS3001 info entry
// whose single note carries the JSON payload. A full bag is grown by one.
func appendTimingDiagnostic(bag *diag.Bag, file *source.File, kind string, report observ.Report) {
	if bag == nil || file == nil {
		return
	}
	payload := timingPayload{
		Kind:    kind,
		Path:    file.Path,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	anchor := source.NewSpan(file.ID, 0, 0, 0)
	entry := diag.New(diag.SevInfo, diag.ObsTimings, anchor,
		fmt.Sprintf("timings (%s): total %.2f ms", kind, payload.TotalMS)).
		WithNote(anchor, string(data))

	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
