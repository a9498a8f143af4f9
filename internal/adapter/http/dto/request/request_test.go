package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		got, err := ParseDate(" 2026-03-10 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date %v", got)
		}
	})

	t.Run("rfc3339 is normalized to utc", func(t *testing.T) {
		got, err := ParseDate("2026-03-10T12:00:00+03:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 9 || got.Location() != time.UTC {
			t.Fatalf("expected 09:00 UTC, got %v", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseDate("10/03/2026"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("optional empty", func(t *testing.T) {
		got, err := ParseOptionalDate("")
		if err != nil || got != nil {
			t.Fatalf("expected nil date, got %v %v", got, err)
		}
	})
}

func TestLaborEntryRequest_Decode(t *testing.T) {
	var r LaborEntryRequest
	body := `{"worker_id":"w-1","work_date":"2026-03-10","hours":"2.5","hourly_rate":300}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput("job-1")
	if in.JobID != "job-1" || in.WorkerID != "w-1" || in.WorkDate.Day() != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Hours.String() != "2.5" || in.HourlyRate == nil || in.HourlyRate.String() != "300" {
		t.Fatalf("unexpected amounts: %s %v", in.Hours, in.HourlyRate)
	}

	var bad LaborEntryRequest
	if err := json.Unmarshal([]byte(`{"work_date":"yesterday"}`), &bad); err == nil {
		t.Fatalf("expected date error")
	}
}

func TestLaborEntryPatchRequest_OnlyPresentFields(t *testing.T) {
	var r LaborEntryPatchRequest
	if err := json.Unmarshal([]byte(`{"hours":4}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToPatch()
	if p.Hours == nil || p.WorkerID != nil || p.WorkDate != nil || p.HourlyRate != nil {
		t.Fatalf("unexpected patch: %+v", p)
	}
}

func TestJobRequest_ToInput(t *testing.T) {
	var r JobRequest
	body := `{"customer_name":"Mustafa","phone":"0532","tags":["gate"],"start_date":"2026-04-01","due_date":null}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.StartDate == nil || in.StartDate.Month() != time.April || in.DueDate != nil {
		t.Fatalf("unexpected dates: %v %v", in.StartDate, in.DueDate)
	}
	if len(in.Tags) != 1 || in.Tags[0] != "gate" {
		t.Fatalf("unexpected tags: %v", in.Tags)
	}
}

func TestParseOnlineCollection(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ParseOnlineCollection([]byte("  "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got.MPPayload) != "{}" || got.Amount != nil {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseOnlineCollection([]byte("{")); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("raw payload", func(t *testing.T) {
		got, err := ParseOnlineCollection([]byte(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got.MPPayload) != `{"payment_method_id":"pix"}` || got.Amount != nil {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("wrapped payload with amount", func(t *testing.T) {
		got, err := ParseOnlineCollection([]byte(`{"amount":"1500.50","mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got.MPPayload) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", got.MPPayload)
		}
		if got.Amount == nil || got.Amount.String() != "1500.5" {
			t.Fatalf("unexpected amount: %v", got.Amount)
		}
	})

	t.Run("null wrapper", func(t *testing.T) {
		if _, err := ParseOnlineCollection([]byte(`{"mp_payload":null}`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad amount", func(t *testing.T) {
		if _, err := ParseOnlineCollection([]byte(`{"amount":"abc","mp_payload":{}}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}
