package validator_test

import (
	"staysync/shared/validator"
	"strings"
	"testing"
)

// Fixture mirrors the shape of the query-filter requests the handlers
// validate.
type bookingFilterRequest struct {
	GuestName string `validate:"required,max=100"                       json:"guest_name"`
	Type      string `validate:"oneof=normal provisional blocked"       json:"type"`
	Nights    int    `validate:"gte=0,lte=365"                          json:"nights"`
	From      string `validate:"omitempty,datetime=2006-01-02"          json:"from"`
}

func validRequest() *bookingFilterRequest {
	return &bookingFilterRequest{
		GuestName: "Maria Silva",
		Type:      "normal",
		Nights:    3,
		From:      "2026-03-14",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *bookingFilterRequest)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(r *bookingFilterRequest) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(r *bookingFilterRequest) { r.GuestName = "" },
			expectError: true,
		},
		{
			name:        "invalid type value",
			mutate:      func(r *bookingFilterRequest) { r.Type = "cancelled" },
			expectError: true,
		},
		{
			name:        "nights out of range",
			mutate:      func(r *bookingFilterRequest) { r.Nights = 900 },
			expectError: true,
		},
		{
			name:        "negative nights",
			mutate:      func(r *bookingFilterRequest) { r.Nights = -1 },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(r *bookingFilterRequest) { r.From = "14/03/2026" },
			expectError: true,
		},
		{
			name:        "empty optional date",
			mutate:      func(r *bookingFilterRequest) { r.From = "" },
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validator.ValidateStruct(req)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "bookings",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2026-03-14",
			tag:         "datetime=2006-01-02",
			expectError: false,
		},
		{
			name:        "invalid date",
			field:       "2026-03-99",
			tag:         "datetime=2006-01-02",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "blocked",
			tag:         "oneof=normal provisional blocked",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "cancelled",
			tag:         "oneof=normal provisional blocked",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"guest_name":"Maria Silva","type":"normal","nights":3,"from":"2026-03-14"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"guest_name":"Maria Silva","type":"cancelled","nights":3,"from":"2026-03-14"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"guest_name":"Maria Silva","type":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data bookingFilterRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingFilterRequest{Type: "normal"}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

func TestValidationErrorHandling(t *testing.T) {
	data := &bookingFilterRequest{
		GuestName: "",          // required violation
		Type:      "cancelled", // oneof violation
		Nights:    -1,          // gte violation
		From:      "bad-date",  // datetime violation
	}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
