package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLegacyBase64(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		wantOK bool
	}{
		{name: "printable payload", value: base64.StdEncoding.EncodeToString([]byte("my-api-key")), want: "my-api-key", wantOK: true},
		{name: "empty", value: "", wantOK: false},
		{name: "not base64", value: "not base64!", wantOK: false},
		{name: "binary payload", value: base64.StdEncoding.EncodeToString([]byte{0x00, 0xff, 0x10}), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeLegacyBase64(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
