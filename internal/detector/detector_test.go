package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testHeader(title, code string, version uint8) []byte {
	rom := make([]byte, 0x200)
	copy(rom[titleOffset:], title)
	copy(rom[gameCodeOffset:], code)
	rom[versionOffset] = version
	return rom
}

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name    string
		rom     []byte
		want    Release
		wantErr error
		wantKey string
	}{
		{
			name: "bn1 us",
			rom:  testHeader("MEGAMAN_BN", "AREE", 0),
			want: Release{
				Revision: Revision{Title: "MEGAMAN_BN", GameCode: "AREE"},
				Game:     BN1,
				Language: English,
			},
			wantKey: "AREE_00",
		},
		{
			name: "bn4 blue moon jp",
			rom:  testHeader("ROCKEXE4.5BM", "B4BJ", 1),
			want: Release{
				Revision: Revision{Title: "ROCKEXE4.5BM", GameCode: "B4BJ", Version: 1},
				Game:     BN4,
				Language: Japanese,
			},
			wantKey: "B4BJ_01",
		},
		{
			name:    "unknown game",
			rom:     testHeader("POKEMON RUBY", "AXVE", 0),
			wantErr: ErrUnsupported,
		},
		{
			name:    "unknown region",
			rom:     testHeader("MEGAMAN_BN", "AREP", 0),
			wantErr: ErrUnsupported,
		},
		{
			name:    "short image",
			rom:     make([]byte, 0x40),
			wantErr: ErrHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.rom)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKey, got.Revision.Key())
		})
	}
}

func TestGameCodePrefixes(t *testing.T) {
	assert.Equal(t, []string{"ARE", "B4B", "B4W"}, GameCodePrefixes())

	d := New(log.NewTestLogger(t))
	_, err := d.Detect(testHeader("POKEMON RUBY", "AXVE", 0))
	assert.ErrorContains(t, err, "supported game codes start with ARE, B4B, B4W")
}
