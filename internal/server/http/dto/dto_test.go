package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-02-29", "2024-02-29", true},
		{" 2024-01-01 ", "2024-01-01", true},
		{"2024-03-10T23:30:00-05:00", "2024-03-10", true},
		{"2024-03-10T00:00:00Z", "2024-03-10", true},
		{"2023-02-29", "", false},
		{"10/03/2024", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseDate(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
		}
		if !tc.ok {
			continue
		}
		if FormatDate(got) != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, FormatDate(got), tc.want)
		}
		if got.Location() != time.UTC || got.Hour() != 0 {
			t.Errorf("ParseDate(%q) must return midnight UTC, got %v", tc.in, got)
		}
	}
}

func TestCustomerRequestToModel(t *testing.T) {
	req := CustomerRequest{
		Name:               "Ada",
		Email:              "ada@example.com",
		CompanyName:        "Engines",
		Phone:              "1",
		ProfilePictureURL:  "https://example.com/a.png",
		ContractStartDate:  "2024-01-01",
		ContractExpireDate: "2025-01-01T10:00:00Z",
	}
	c, err := req.ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Ada" || c.CompanyName != "Engines" || FormatDate(c.ContractExpireDate) != "2025-01-01" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	req.ContractExpireDate = "soon"
	if _, err := req.ToModel(); err == nil || !strings.Contains(err.Error(), "contract_expire_date") {
		t.Fatalf("expected field-qualified error, got %v", err)
	}

	req.ContractStartDate = "never"
	if _, err := req.ToModel(); err == nil || !strings.Contains(err.Error(), "contract_start_date") {
		t.Fatalf("expected field-qualified error, got %v", err)
	}
}

func TestUserResponseHidesPassword(t *testing.T) {
	payload, err := json.Marshal(NewUserListResponse([]model.User{{ID: 1, Name: "a", Email: "a@example.com", PasswordHash: "secret-hash"}}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "secret-hash") || strings.Contains(string(payload), "password") {
		t.Fatalf("password leaked in %s", payload)
	}
}

func TestListResponsesAreNeverNull(t *testing.T) {
	users, _ := json.Marshal(NewUserListResponse(nil))
	customers, _ := json.Marshal(NewCustomerListResponse(nil))
	if string(users) != "[]" || string(customers) != "[]" {
		t.Fatalf("expected empty arrays, got %s and %s", users, customers)
	}
}

func TestCustomerResponseFormatsDates(t *testing.T) {
	resp := NewCustomerListResponse([]model.Customer{{
		ID:                 4,
		ContractStartDate:  time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		ContractExpireDate: time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
	}})
	if resp[0].ContractStartDate != "2024-05-06" || resp[0].ContractExpireDate != "2026-07-08" {
		t.Fatalf("unexpected dates: %+v", resp[0])
	}
}

func TestMutationResponseOmitsZeroInsertID(t *testing.T) {
	payload, _ := json.Marshal(NewMutationResponse(model.MutationResult{RowsAffected: 0}))
	if string(payload) != `{"affected_rows":0}` {
		t.Fatalf("unexpected payload %s", payload)
	}

	payload, _ = json.Marshal(NewMutationResponse(model.MutationResult{InsertID: 3, RowsAffected: 1}))
	if string(payload) != `{"insert_id":3,"affected_rows":1}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestCustomerDatesKeepCalendarDayAcrossOffsets(t *testing.T) {
	req := CustomerRequest{
		Name:               "Offset",
		Email:              "offset@example.com",
		ContractStartDate:  "2024-01-01T23:30:00-05:00",
		ContractExpireDate: "2025-01-01T00:30:00+09:00",
	}
	customer, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel returned error: %v", err)
	}

	resp := NewCustomerListResponse([]model.Customer{customer})
	if resp[0].ContractStartDate != "2024-01-01" || resp[0].ContractExpireDate != "2025-01-01" {
		t.Fatalf("calendar days shifted: %+v", resp[0])
	}
}
