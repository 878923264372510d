package cli

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		token   string
		want    Command
		wantErr bool
	}{
		{token: "create", want: CommandCreate},
		{token: "readall", want: CommandReadAll},
		{token: "read", want: CommandRead},
		{token: "update", want: CommandUpdate},
		{token: "delete", want: CommandDelete},
		{token: "Create", wantErr: true},
		{token: "READALL", wantErr: true},
		{token: "list", wantErr: true},
		{token: "", wantErr: true},
		{token: " create", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseCommand(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCommand(%q) expected error, got %v", tt.token, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestCommand_Label(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CommandCreate, "Create"},
		{CommandReadAll, ""},
		{CommandRead, "Read"},
		{CommandUpdate, "Update"},
		{CommandDelete, "Delete"},
	}

	for _, tt := range tests {
		if got := tt.cmd.Label(); got != tt.want {
			t.Errorf("Command(%d).Label() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}
