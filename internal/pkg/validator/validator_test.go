package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "09:00", "17:00", "23:59"}
	invalid := []string{"24:00", "9:00", "09:60", "0900", "09:0", "", "ab:cd", " 09:00"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Errorf("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2023-02-29", "15-01-2024", "2024/01/15", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+14155552671", "628123456789", "12"}
	invalid := []string{"0812345678", "+0123", "1", "+1234567890123456", "12-34"}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "john_doe", "User123"}
	invalid := []string{"ab", "john.doe", "with space", "a_very_long_username_over_thirty_chars"}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Pending", "In Progress", "Completed"}
	if !IsInSlice("In Progress", slice) {
		t.Errorf("IsInSlice(In Progress) = false, want true")
	}
	if IsInSlice("Done", slice) {
		t.Errorf("IsInSlice(Done) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatalf("empty ValidationErrors.Err() should be nil")
	}
	errs.Add("email", "email is required")
	errs.Add("email", "email must be a valid email address")
	errs.Add("first_name", "first_name is required")

	want := "email: email is required; email: email must be a valid email address; first_name: first_name is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
	m := errs.ToMap()
	if m["email"] != "email is required" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}

type sample struct {
	Name    string   `json:"name" validate:"required,min=2,max=5"`
	Email   string   `json:"email" validate:"required,email"`
	Gender  string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Joined  string   `json:"join_date" validate:"required,date"`
	CheckIn string   `json:"check_in_time" validate:"required,clock"`
	Phone   string   `json:"phone_number" validate:"required,phone"`
	Links   []string `json:"documents" validate:"omitempty,dive,url"`
}

func TestStruct_Valid(t *testing.T) {
	s := sample{
		Name:    "Ann",
		Email:   "ann@example.com",
		Gender:  "Female",
		Joined:  "2024-01-15",
		CheckIn: "08:30",
		Phone:   "+14155552671",
		Links:   []string{"https://files.example.com/cv.pdf"},
	}
	if err := Struct(s); err != nil {
		t.Fatalf("Struct() = %v, want nil", err)
	}
}

func TestStruct_TranslatesFieldErrors(t *testing.T) {
	s := sample{
		Name:    "A",
		Email:   "not-an-email",
		Gender:  "Unknown",
		Joined:  "15-01-2024",
		CheckIn: "8:30",
	}

	err := Struct(s)
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct() error type = %T, want ValidationErrors", err)
	}

	got := errs.ToMap()
	want := map[string]string{
		"name":          "name must be at least 2 characters long",
		"email":         "email must be a valid email address",
		"gender":        "gender must be one of: Male, Female, Other",
		"join_date":     "join_date must be in YYYY-MM-DD format",
		"check_in_time": "Time must be in HH:mm format",
		"phone_number":  "phone_number is required",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("ToMap()[%q] = %q, want %q", field, got[field], msg)
		}
	}
}
