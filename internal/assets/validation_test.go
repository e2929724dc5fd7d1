package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   error
	}{
		{name: "plain name", assetName: "modio", wantErr: nil},
		{name: "name with extension", assetName: "modio.crt", wantErr: nil},
		{name: "name with hyphen and underscore", assetName: "root-ca_2.pem", wantErr: nil},
		{name: "hidden file name", assetName: ".keep", wantErr: nil},
		{name: "empty name", assetName: "", wantErr: ErrInvalidAssetName},
		{name: "single dot", assetName: ".", wantErr: ErrInvalidAssetName},
		{name: "double dot", assetName: "..", wantErr: ErrInvalidAssetName},
		{name: "forward slash traversal", assetName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "backslash traversal", assetName: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "absolute path", assetName: "/etc/passwd", wantErr: ErrInvalidAssetName},
		{name: "nested path", assetName: "certs/modio.crt", wantErr: ErrInvalidAssetName},
		{name: "nul byte", assetName: "modio\x00.crt", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.assetName)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.assetName, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.assetName, err, tt.wantErr)
			}
		})
	}
}
