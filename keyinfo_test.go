package duplex

import (
	"bytes"
	"testing"
)

func TestKeyInfo_Value(t *testing.T) {
	tests := []struct {
		name string
		info KeyInfo
		want []byte
	}{
		{"full buffer", KeyInfo{Bytes: []byte{1, 2, 3}, Used: 3}, []byte{1, 2, 3}},
		{"truncated", KeyInfo{Bytes: []byte{1, 2, 3, 0, 0}, Used: 3}, []byte{1, 2, 3}},
		{"empty", KeyInfo{}, nil},
		{"used beyond buffer", KeyInfo{Bytes: []byte{1, 2}, Used: 5}, []byte{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Value(); !bytes.Equal(got, tt.want) {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewKeyInfo(t *testing.T) {
	material := []byte{4, 5, 6}
	info := newKeyInfo(material)

	if info.Used != len(material) {
		t.Errorf("Used = %d, want %d", info.Used, len(material))
	}
	if !bytes.Equal(info.Value(), material) {
		t.Errorf("Value() = %v, want %v", info.Value(), material)
	}
}
