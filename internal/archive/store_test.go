package archive_test

import (
	"context"
	"errors"
	"testing"

	"lectern/internal/archive"
	"lectern/internal/report"
	"lectern/internal/testsupport"
)

func sampleReport() *report.Report {
	rep := report.New()
	rep.Session = report.Session{Topic: "Circle Geometry", TeacherName: "Dana Rivera", StudentCount: 12}
	rep.FinalScore = 4.2
	rep.Criteria = append(rep.Criteria, report.Criterion{
		ID: "overall", Name: "Overall", Score: 4.0,
		Evidence:        []string{},
		Recommendations: []string{},
	})
	return rep
}

func TestSaveAssignsIdentity(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	rec, err := store.Save(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.ID == "" {
		t.Error("saved record has no ID")
	}
	if rec.EvaluatedAt.IsZero() {
		t.Error("saved record has no evaluation time")
	}
	if rec.Topic != "Circle Geometry" || rec.FinalScore != 4.2 {
		t.Errorf("record summary = %q/%v", rec.Topic, rec.FinalScore)
	}
}

func TestSaveThenGetRoundTrips(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	saved, err := store.Save(ctx, sampleReport())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.Report == nil {
		t.Fatal("loaded record has no report payload")
	}
	if loaded.Report.Session.TeacherName != "Dana Rivera" {
		t.Errorf("teacher = %q", loaded.Report.Session.TeacherName)
	}
	if loaded.Report.FinalScore != 4.2 {
		t.Errorf("final score = %v", loaded.Report.FinalScore)
	}
}

func TestListOrdersAndOmitsPayload(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for range 3 {
		if _, err := store.Save(ctx, sampleReport()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("List returned %d records, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].EvaluatedAt.After(records[i-1].EvaluatedAt) {
			t.Error("records are not newest first")
		}
	}
	if records[0].Report != nil {
		t.Error("List loaded the full payload")
	}
}

func TestGetMissingReport(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	_, err := store.Get(context.Background(), "no-such-id")
	if !errors.Is(err, archive.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveNilReport(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := store.Save(context.Background(), nil); err == nil {
		t.Error("nil report did not error")
	}
}
