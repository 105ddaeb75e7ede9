package safety

import (
	"reflect"
	"strings"
	"testing"
)

func TestScan_chestPain(t *testing.T) {
	got := Scan("I have chest pain")
	if !got.HasRedFlags {
		t.Fatal("expected red flags")
	}
	if !reflect.DeepEqual(got.MatchedLabels, []string{"chest pain"}) {
		t.Errorf("labels = %v, want [chest pain]", got.MatchedLabels)
	}
	if got.UrgentMessage == nil {
		t.Fatal("urgent message missing")
	}
	if !strings.Contains(*got.UrgentMessage, "chest pain") {
		t.Errorf("message should name the matched label: %q", *got.UrgentMessage)
	}
	if !strings.Contains(*got.UrgentMessage, "emergency services") {
		t.Errorf("message should direct to emergency services: %q", *got.UrgentMessage)
	}
}

func TestScan_multipleLabelsSorted(t *testing.T) {
	got := Scan("passed out twice and now struggling to breathe with chest pain")
	want := []string{"chest pain", "fainting", "severe shortness of breath"}
	if !reflect.DeepEqual(got.MatchedLabels, want) {
		t.Errorf("labels = %v, want %v", got.MatchedLabels, want)
	}
}

func TestScan_caseInsensitive(t *testing.T) {
	got := Scan("UNCONTROLLED BLEEDING since yesterday")
	if !got.HasRedFlags {
		t.Error("uppercase phrase should still match")
	}
}

func TestScan_labelCountedOnce(t *testing.T) {
	got := Scan("chest pain and also a tight chest")
	if !reflect.DeepEqual(got.MatchedLabels, []string{"chest pain"}) {
		t.Errorf("labels = %v, want single [chest pain]", got.MatchedLabels)
	}
}

func TestScan_noRedFlags(t *testing.T) {
	got := Scan("I feel tired and a bit weak")
	if got.HasRedFlags {
		t.Errorf("unexpected red flags: %v", got.MatchedLabels)
	}
	if len(got.MatchedLabels) != 0 {
		t.Errorf("labels = %v, want empty", got.MatchedLabels)
	}
	if got.UrgentMessage != nil {
		t.Errorf("message = %q, want nil", *got.UrgentMessage)
	}
}

func TestScan_emptyText(t *testing.T) {
	got := Scan("")
	if got.HasRedFlags || got.UrgentMessage != nil {
		t.Errorf("empty text should yield no flags: %+v", got)
	}
}
