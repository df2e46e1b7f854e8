package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestColumns_Order(t *testing.T) {
	expected := []string{
		"sortname", "name", "firstname", "middlename", "lastname", "namemod", "nickname",
		"description", "leadership_title", "party", "address", "phone", "website",
	}
	if len(Columns) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(Columns))
	}
	for i, name := range expected {
		if Columns[i] != name {
			t.Errorf("column %d: expected %s, got %s", i, name, Columns[i])
		}
	}
}

func TestMemberRecord_ValuesRoundTrip(t *testing.T) {
	rec := MemberRecord{
		SortName: StringPtr("Cohen, Steve (Rep.) [D-TN9]"),
		LastName: StringPtr("Cohen"),
		Phone:    StringPtr("202-225-3265"),
		Website:  StringPtr("https://cohen.house.gov"),
	}

	values := rec.Values()
	if len(values) != len(Columns) {
		t.Fatalf("expected %d values, got %d", len(Columns), len(values))
	}
	if StringValue(values[4]) != "Cohen" {
		t.Errorf("lastname should be at index 4, got %v", values[4])
	}
	if values[1] != nil {
		t.Error("name should be nil")
	}

	got := MemberRecordFromValues(values)
	if StringValue(got.Phone) != "202-225-3265" {
		t.Errorf("phone lost: %v", got.Phone)
	}
	if StringValue(got.Website) != "https://cohen.house.gov" {
		t.Errorf("website lost: %v", got.Website)
	}
}

func TestMemberRecord_Get(t *testing.T) {
	rec := MemberRecord{Party: StringPtr("Democrat")}

	v, ok := rec.Get(ColumnParty)
	if !ok || StringValue(v) != "Democrat" {
		t.Errorf("expected Democrat, got %v", v)
	}

	if _, ok := rec.Get("unknown"); ok {
		t.Error("unknown column should not be found")
	}
}

func TestMemberRecordFromValues_Short(t *testing.T) {
	rec := MemberRecordFromValues([]*string{StringPtr("a")})
	if StringValue(rec.SortName) != "a" {
		t.Errorf("expected a, got %v", rec.SortName)
	}
	if rec.Website != nil {
		t.Error("missing values should stay nil")
	}
}

func TestTask_Lifecycle(t *testing.T) {
	task := NewTask(uuid.New(), "FetchDataFromOrigin")
	if task.Status != TaskStatusPending {
		t.Errorf("expected PENDING, got %s", task.Status)
	}
	if task.IsFinished() {
		t.Error("pending task should not be finished")
	}

	task.MarkRunning()
	if task.Status != TaskStatusRunning || task.StartedAt == nil {
		t.Error("task should be running with start time")
	}

	task.MarkFailed("boom")
	if !task.IsFinished() || task.Error != "boom" {
		t.Errorf("unexpected task state: %+v", task)
	}
	if task.Duration() < 0 {
		t.Error("duration should not be negative")
	}
}
