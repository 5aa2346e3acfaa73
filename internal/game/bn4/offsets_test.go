package bn4

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testOffsetsINI = `
; offsets of a single revision
[B4WE_00]
chip_data                    = 0x08001000
chip_names_pointers          = 0x08000010, 0x08000014
chip_descriptions_pointers   = 0x08000018, 0x0800001c
chip_icon_palette_pointer    = 0x08000020
element_icon_palette_pointer = 0x08000024
element_icons_pointer        = 0x08000028
ncp_data                     = 0x08000e00
ncp_names_pointer            = 0x0800002c
NCP_Descriptions_Pointer     = 0x08000030
`

func TestLoadOffsets(t *testing.T) {
	tables, err := LoadOffsets([]byte(testOffsetsINI))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tables))

	offsets, ok := tables["B4WE_00"]
	assert.True(t, ok)
	assert.Equal(t, testOffsets, *offsets)
}

func TestLoadOffsetsErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "missing key",
			source: "[B4WE_00]\nchip_data = 0x08001000\n",
		},
		{
			name: "invalid address",
			source: testOffsetsINI[:len(testOffsetsINI)-len("0x08000030\n")] +
				"0x1_0000_0000\n",
		},
		{
			name:   "single address for a pair",
			source: "[B4WE_00]\nchip_data = 0x08001000\nchip_names_pointers = 0x08000010\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOffsets([]byte(tt.source))
			assert.True(t, errors.Is(err, ErrOffsets))
		})
	}
}
