package http

import (
	"errors"

	"delete-on-check/internal/document"
	"delete-on-check/internal/model"
	"delete-on-check/pkg/response"
)

// --- Request DTOs ---

type pathReq struct {
	Path string `json:"path" form:"path"`
}

func (r pathReq) validate() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (r pathReq) toInput() document.PathInput {
	return document.PathInput{Path: r.Path}
}

// ---

// contentReq is the query of GET /content; an empty path selects the active document.
type contentReq struct {
	Path string `form:"path"`
}

func (r contentReq) toInput() document.PathInput {
	return document.PathInput{Path: r.Path}
}

// ---

type positionReq struct {
	Line int `json:"line" binding:"min=0"`
	Ch   int `json:"ch"   binding:"min=0"`
}

type editReq struct {
	Path string      `json:"path" binding:"required"`
	From positionReq `json:"from"`
	To   positionReq `json:"to"`
	Text string      `json:"text"`
}

func (r editReq) validate() error { return nil }

func (r editReq) toInput() document.EditInput {
	return document.EditInput{
		Path: r.Path,
		From: model.Position{Line: r.From.Line, Ch: r.From.Ch},
		To:   model.Position{Line: r.To.Line, Ch: r.To.Ch},
		Text: r.Text,
	}
}

// ---

type setContentReq struct {
	Path    string `json:"path"    binding:"required"`
	Content string `json:"content"`
}

func (r setContentReq) validate() error { return nil }

func (r setContentReq) toInput() document.SetContentInput {
	return document.SetContentInput{Path: r.Path, Content: r.Content}
}

// ---

type sweepReq struct {
	DryRun bool `json:"dry_run" form:"dry_run"`
}

func (r sweepReq) toInput() document.SweepInput {
	return document.SweepInput{DryRun: r.DryRun}
}

// --- Response DTOs ---

type statsResp struct {
	Total     int `json:"total"`
	Checked   int `json:"checked"`
	Unchecked int `json:"unchecked"`
}

type documentResp struct {
	Path    string    `json:"path"`
	Content string    `json:"content"`
	Open    bool      `json:"open"`
	Active  bool      `json:"active"`
	Dirty   bool      `json:"dirty"`
	Enabled bool      `json:"enabled"`
	Stats   statsResp `json:"stats"`
}

func newDocumentResp(doc document.Document) documentResp {
	return documentResp{
		Path:    doc.Path,
		Content: doc.Content,
		Open:    doc.Open,
		Active:  doc.Active,
		Dirty:   doc.Dirty,
		Enabled: doc.Enabled,
		Stats: statsResp{
			Total:     doc.Stats.Total,
			Checked:   doc.Stats.Checked,
			Unchecked: doc.Stats.Unchecked,
		},
	}
}

type detailResp struct {
	Document documentResp `json:"document"`
}

func (h *handler) newDetailResp(out document.DocumentOutput) detailResp {
	return detailResp{Document: newDocumentResp(out.Document)}
}

// openDocResp leaves out the content; GET /content returns it.
type openDocResp struct {
	Path    string    `json:"path"`
	Active  bool      `json:"active"`
	Dirty   bool      `json:"dirty"`
	Enabled bool      `json:"enabled"`
	Stats   statsResp `json:"stats"`
}

type listResp struct {
	Files  []string      `json:"files"`
	Open   []openDocResp `json:"open"`
	Active string        `json:"active,omitempty"`
}

func (h *handler) newListResp(out document.ListOutput) listResp {
	open := make([]openDocResp, len(out.Open))
	for i, d := range out.Open {
		full := newDocumentResp(d)
		open[i] = openDocResp{
			Path:    full.Path,
			Active:  full.Active,
			Dirty:   full.Dirty,
			Enabled: full.Enabled,
			Stats:   full.Stats,
		}
	}
	return listResp{Files: out.Files, Open: open, Active: out.Active}
}

type sweepResultResp struct {
	Path    string `json:"path"`
	Removed int    `json:"removed"`
	Written bool   `json:"written"`
}

type sweepResp struct {
	Results []sweepResultResp `json:"results"`
	DryRun  bool              `json:"dry_run"`
	SweptAt response.DateTime `json:"swept_at"`
}

func (h *handler) newSweepResp(out document.SweepOutput) sweepResp {
	results := make([]sweepResultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = sweepResultResp{Path: r.Path, Removed: r.Removed, Written: r.Written}
	}
	return sweepResp{
		Results: results,
		DryRun:  out.DryRun,
		SweptAt: response.DateTime(out.At),
	}
}
