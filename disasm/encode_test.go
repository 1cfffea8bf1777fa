package disasm

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nsf/jsondiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	for _, format := range Formats {
		parsed, err := ParseFormat(string(format))
		assert.NoError(err)
		assert.Equal(format, parsed)
	}

	parsed, err := ParseFormat("JSON")
	assert.NoError(err)
	assert.Equal(FORMAT_JSON, parsed)

	_, err = ParseFormat("xml")
	assert.ErrorIs(err, ErrFormat)
}

func TestEncodeText(t *testing.T) {
	assert := assert.New(t)

	lines := testListing(t)

	var out bytes.Buffer
	assert.NoError(Encode(&out, FORMAT_TEXT, lines[3:5]))
	assert.Equal("8001000c: 00000000  nop\n80010010: 03e00008  jr      $ra\n", out.String())

	assert.ErrorIs(Encode(&out, Format("xml"), lines), ErrFormat)
}

const testJSON = `[
  {
    "address": 2147549184,
    "word": 1006731265,
    "layout": "I",
    "known": true,
    "mnemonic": "lui",
    "description": "Load Upper Immediate",
    "primary": 15,
    "rs": 0,
    "rt": 1,
    "immediate": 32769,
    "text": "lui     $at, 0x8001"
  },
  {
    "address": 2147549192,
    "word": 201342976,
    "layout": "J",
    "known": true,
    "mnemonic": "jal",
    "description": "Jump and Link",
    "primary": 3,
    "target": 16384,
    "text": "jal     0x0004000"
  },
  {
    "address": 2147549204,
    "word": 63,
    "layout": "R",
    "known": false,
    "primary": 0,
    "secondary": 63,
    "text": ".word   0x0000003f ; R primary 0x00 secondary 0x3f"
  }
]`

func TestEncodeJSON(t *testing.T) {
	lines := testListing(t)
	subset := []Line{lines[0], lines[2], lines[5]}

	var out bytes.Buffer
	require.NoError(t, Encode(&out, FORMAT_JSON, subset))

	opts := jsondiff.DefaultConsoleOptions()
	diff, text := jsondiff.Compare(out.Bytes(), []byte(testJSON), &opts)
	assert.Equal(t, jsondiff.FullMatch, diff, text)
}

func TestEncodeYAML(t *testing.T) {
	assert := assert.New(t)

	lines := testListing(t)

	var out bytes.Buffer
	require.NoError(t, Encode(&out, FORMAT_YAML, lines))
	assert.Contains(out.String(), "mnemonic: addiu\n")
	assert.Contains(out.String(), "layout: J\n")

	var records []Record
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &records))
	assert.Empty(cmp.Diff(Records(lines), records))
}
