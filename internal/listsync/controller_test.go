package listsync

import (
	"errors"
	"testing"

	"claudetask-cli/internal/model"
)

func TestController_LoadReplacesWholesale(t *testing.T) {
	var c Controller[model.Hook]
	seq := c.Begin(Scope{ProjectID: "p1"})
	if !c.Loading() {
		t.Fatalf("controller must report loading after Begin")
	}
	ok := c.ApplyLoad(seq, []model.Hook{hook("1", "A", model.ProvenanceDefault)}, nil)
	if !ok {
		t.Fatalf("fresh response must be applied")
	}
	if c.Loading() {
		t.Fatalf("loading must clear once applied")
	}
	if len(c.Items()) != 1 || c.Items()[0].Name != "A" {
		t.Fatalf("items not replaced: %v", c.Items())
	}

	seq = c.Begin(Scope{ProjectID: "p1"})
	c.ApplyLoad(seq, []model.Hook{hook("2", "B", model.ProvenanceCustom)}, nil)
	if len(c.Items()) != 1 || c.Items()[0].Name != "B" {
		t.Fatalf("second load must replace, not merge: %v", c.Items())
	}
}

func TestController_FailurePreservesPreviousList(t *testing.T) {
	var c Controller[model.Hook]
	seq := c.Begin(Scope{})
	c.ApplyLoad(seq, []model.Hook{hook("1", "A", model.ProvenanceDefault)}, nil)

	seq = c.Begin(Scope{})
	c.ApplyLoad(seq, nil, errors.New("boom"))
	if c.Err() == nil {
		t.Fatalf("load failure must surface an error")
	}
	if len(c.Items()) != 1 || c.Items()[0].Name != "A" {
		t.Fatalf("load failure must leave the previous list untouched: %v", c.Items())
	}

	c.ClearErr()
	if c.Err() != nil {
		t.Fatalf("ClearErr must dismiss the error")
	}
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	var c Controller[model.Hook]
	slow := c.Begin(Scope{Path: "a"})
	fast := c.Begin(Scope{Path: "b"})

	if !c.ApplyLoad(fast, []model.Hook{hook("2", "Newer", model.ProvenanceDefault)}, nil) {
		t.Fatalf("newer response must apply")
	}
	if c.ApplyLoad(slow, []model.Hook{hook("1", "Stale", model.ProvenanceDefault)}, nil) {
		t.Fatalf("out-of-order response must be discarded")
	}
	if c.Items()[0].Name != "Newer" {
		t.Fatalf("stale response overwrote newer state: %v", c.Items())
	}
}

func TestController_StaleErrorDiscardedToo(t *testing.T) {
	var c Controller[model.Hook]
	slow := c.Begin(Scope{})
	fast := c.Begin(Scope{})
	c.ApplyLoad(fast, []model.Hook{hook("1", "A", model.ProvenanceDefault)}, nil)
	c.ApplyLoad(slow, nil, errors.New("stale failure"))
	if c.Err() != nil {
		t.Fatalf("stale failure must not surface after a newer success")
	}
}

func TestController_Visible(t *testing.T) {
	var c Controller[model.Hook]
	seq := c.Begin(Scope{})
	c.ApplyLoad(seq, []model.Hook{
		{ID: "1", Name: "Logger", Provenance: model.ProvenanceDefault, Enabled: true},
		{ID: "2", Name: "Logging Hook", Provenance: model.ProvenanceCustom},
		{ID: "3", Name: "Formatter", Provenance: model.ProvenanceCustom, Enabled: true},
	}, nil)

	got := c.Visible("log", BucketAll)
	if len(got) != 2 {
		t.Fatalf("query over all: got %d items", len(got))
	}
	got = c.Visible("", BucketEnabled)
	if len(got) != 2 {
		t.Fatalf("enabled bucket: got %d items", len(got))
	}
	got = c.Visible("log", BucketEnabled)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("combined filter: got %v", got)
	}
}
