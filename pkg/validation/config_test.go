package validation

import (
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	if err := NewConfigValidator("source").Required("path", "  ").Validate(); err == nil {
		t.Error("Expected error for blank required field")
	} else if !strings.Contains(err.Error(), "source.path") {
		t.Errorf("Expected field name in error, got %q", err.Error())
	}

	if err := NewConfigValidator("source").Required("path", "people.csv").Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestConfigValidator_Together(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		secret  string
		wantErr string
	}{
		{"both empty", "", "", ""},
		{"both set", "AKID", "s3cret", ""},
		{"key only", "AKID", "", "source.secret_access_key: must be set together with access_key_id"},
		{"secret only", "", "s3cret", "source.access_key_id: must be set together with secret_access_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigValidator("source").
				Together("access_key_id", tt.key, "secret_access_key", tt.secret).
				Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigValidator_SocketAddress(t *testing.T) {
	schemes := []string{"tcp", "ipc", "inproc"}

	valid := []string{"", "tcp://*:7070", "ipc:///tmp/socialnet.ipc", "inproc://events"}
	for _, addr := range valid {
		if err := NewConfigValidator("events").SocketAddress("listen", addr, schemes...).Validate(); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", addr, err)
		}
	}

	invalid := []string{"localhost:7070", "tcp://", "udp://*:7070"}
	for _, addr := range invalid {
		if err := NewConfigValidator("events").SocketAddress("listen", addr, schemes...).Validate(); err == nil {
			t.Errorf("Expected %q to be rejected", addr)
		}
	}
}

func TestConfigValidator_When(t *testing.T) {
	err := NewConfigValidator("source").When(true, func(v *ConfigValidator) {
		v.Required("bucket", "")
	}).Validate()
	if err == nil {
		t.Error("Expected error when condition is true")
	}

	err = NewConfigValidator("source").When(false, func(v *ConfigValidator) {
		v.Required("bucket", "")
	}).Validate()
	if err != nil {
		t.Errorf("Expected no error when condition is false, got %v", err)
	}
}

func TestConfigValidator_ValidateJoinsErrors(t *testing.T) {
	err := NewConfigValidator("source").Required("bucket", "").Required("key", "").Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "source.bucket") || !strings.Contains(err.Error(), "source.key") {
		t.Errorf("Expected both fields in %q", err.Error())
	}

	if NewConfigValidator("empty").Validate() != nil {
		t.Error("Expected nil for no errors")
	}
}
