// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package lwacp

import "testing"

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name      string
		response  []byte
		commandID uint8
		want      uint8
		wantOK    bool
	}{
		{
			name:      "observed envelope",
			response:  []byte{0x05, 0x00, 0x00, 0x01, 0x64, 0x02},
			commandID: 0x64,
			want:      0x02,
			wantOK:    true,
		},
		{
			name:      "leading noise bytes before envelope",
			response:  []byte{0xFF, 0xFF, 0x05, 0x00, 0x00, 0x01, 0xB9, 0x01},
			commandID: 0xB9,
			want:      0x01,
			wantOK:    true,
		},
		{
			name:      "first match wins",
			response:  []byte{0x64, 0x03, 0x64, 0x01},
			commandID: 0x64,
			want:      0x03,
			wantOK:    true,
		},
		{
			name:      "command id absent",
			response:  []byte{0x05, 0x00, 0x00, 0x01, 0x69, 0x01},
			commandID: 0x64,
			wantOK:    false,
		},
		{
			name:      "command id is final byte",
			response:  []byte{0x00, 0x01, 0x64},
			commandID: 0x64,
			wantOK:    false,
		},
		{
			name:      "empty response",
			response:  nil,
			commandID: 0x64,
			wantOK:    false,
		},
		{
			name:      "single byte response",
			response:  []byte{0x64},
			commandID: 0x64,
			wantOK:    false,
		},
		{
			name:      "value of zero is a real value",
			response:  []byte{0x01, 0x64, 0x00},
			commandID: 0x64,
			want:      0x00,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractValue(tt.response, tt.commandID)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("value = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}
