package scheduler

import (
	"fmt"
	"testing"

	"github.com/dozhesap/dosing-api/data"
	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/dosing/entities"
)

// failingParser always errors, for exercising the fail-fast initial load
type failingParser struct{}

func (p *failingParser) ParseCatalog(path string) ([]entities.Drug, map[string]entities.Drug, map[string]entities.Drug, error) {
	return nil, nil, nil, fmt.Errorf("parser broken")
}

func TestStartLoadsCatalog(t *testing.T) {
	dc := data.NewDataContainer()
	s := NewScheduler(dc, dosing.NewSeedParser(), "")
	defer s.Stop()

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if len(dc.GetDrugs()) == 0 {
		t.Error("catalog not populated after Start")
	}
	if dc.GetLastUpdated().IsZero() {
		t.Error("last updated not set after Start")
	}
	if _, ok := dc.GetDrug("ampisilin sulbaktam"); !ok {
		t.Error("seed drug not reachable after Start")
	}
}

func TestStartFailsFastOnBadParser(t *testing.T) {
	dc := data.NewDataContainer()
	s := NewScheduler(dc, &failingParser{}, "")

	if err := s.Start(); err == nil {
		t.Error("Start with a broken parser succeeded, want error")
	}
	if dc.IsUpdating() {
		t.Error("updating flag left set after failed reload")
	}
}

func TestReloadSkipsWhenUpdateInProgress(t *testing.T) {
	dc := data.NewDataContainer()
	s := NewScheduler(dc, dosing.NewSeedParser(), "")

	if !dc.BeginUpdate() {
		t.Fatal("could not take the update flag")
	}
	defer dc.EndUpdate()

	// A reload while another is in flight is a no-op, not an error
	if err := s.reloadCatalog(); err != nil {
		t.Errorf("reloadCatalog = %v, want nil", err)
	}
	if len(dc.GetDrugs()) != 0 {
		t.Error("skipped reload should not populate the catalog")
	}
}

func TestReloadReleasesUpdateFlag(t *testing.T) {
	dc := data.NewDataContainer()
	s := NewScheduler(dc, dosing.NewSeedParser(), "")

	if err := s.reloadCatalog(); err != nil {
		t.Fatalf("reloadCatalog failed: %v", err)
	}
	if dc.IsUpdating() {
		t.Error("updating flag left set after reload")
	}
	if !dc.BeginUpdate() {
		t.Error("update flag not reusable after reload")
	}
	dc.EndUpdate()
}
