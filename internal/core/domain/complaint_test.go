package domain

import "testing"

func TestParseCategory(t *testing.T) {
	valid := []string{"Electricity", "Water", "Road", "Internet"}
	for _, v := range valid {
		got, ok := ParseCategory(v)
		if !ok || string(got) != v {
			t.Errorf("ParseCategory(%q) = (%q, %v), want valid", v, got, ok)
		}
	}

	invalid := []string{"", "electricity", "Gas", "ELECTRICITY", "Road "}
	for _, v := range invalid {
		if _, ok := ParseCategory(v); ok {
			t.Errorf("ParseCategory(%q) accepted, want rejection", v)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, v := range []string{"Low", "Medium", "High"} {
		if _, ok := ParsePriority(v); !ok {
			t.Errorf("ParsePriority(%q) rejected, want valid", v)
		}
	}
	for _, v := range []string{"", "low", "Urgent", "MEDIUM"} {
		if _, ok := ParsePriority(v); ok {
			t.Errorf("ParsePriority(%q) accepted, want rejection", v)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, v := range []string{"user", "admin"} {
		if _, ok := ParseRole(v); !ok {
			t.Errorf("ParseRole(%q) rejected, want valid", v)
		}
	}
	for _, v := range []string{"", "Admin", "superuser", "root"} {
		if _, ok := ParseRole(v); ok {
			t.Errorf("ParseRole(%q) accepted, want rejection", v)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "title", Message: "title is required"},
		FieldError{Field: "category", Message: "Gas is not a valid category"},
	)
	want := "title: title is required; category: Gas is not a valid category"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
