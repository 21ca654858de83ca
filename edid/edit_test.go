package edid

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edid-forge/edid/ebytes"
	"edid-forge/edid/edesc"
	"edid-forge/edid/efield"
	"edid-forge/edid/efixture"
	"edid-forge/logger"
)

func TestEditFile(t *testing.T) {
	dir := t.TempDir()
	bs := efixture.Base()
	efixture.PutMonitorDescriptor(bs, 0x48, 0xFF, "OLD")
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, bs, 0644))

	output := filepath.Join(dir, "nested", "out", "edited.bin")
	err := EditFile(input, output, efield.Edits{
		Serial:     "CAFEBABE",
		Date:       &efield.Date{Week: 7, Year: 2021},
		SerialText: "NEW-SERIAL",
	})
	require.NoError(t, err)

	result, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, result, ebytes.BlockSize)
	assert.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE, 7, 31}, result[0x0C:0x12])
	assert.Equal(t, []byte("NEW-SERIAL   "), result[0x48+5:0x48+18])
	assert.True(t, efield.ChecksumValid(ebytes.NewImage(result)))
}

func TestEditFile_KeepsLength(t *testing.T) {
	dir := t.TempDir()
	logs := &bytes.Buffer{}
	require.NoError(t, logger.Init(logger.Options{Output: logs}))
	defer func() { _ = logger.Init(logger.Options{Output: &bytes.Buffer{}}) }()

	bs := append(efixture.Base(), bytes.Repeat([]byte{0xAA}, ebytes.BlockSize)...)
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, bs, 0644))
	output := filepath.Join(dir, "out.bin")

	require.NoError(t, EditFile(input, output, efield.Edits{Serial: "00000001"}))

	result, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, result, 2*ebytes.BlockSize)
	assert.Equal(t, bs[ebytes.BlockSize:], result[ebytes.BlockSize:])
	assert.Contains(t, logs.String(), "not 128 byte length edid")
	assert.Contains(t, logs.String(), "bytes=256")
}

func TestEditFile_LogsEditsAsJSON(t *testing.T) {
	dir := t.TempDir()
	logs := &bytes.Buffer{}
	require.NoError(t, logger.Init(logger.Options{Verbose: true, Format: logger.FormatJSON, Output: logs}))
	defer func() { _ = logger.Init(logger.Options{Output: &bytes.Buffer{}}) }()

	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, efixture.Base(), 0644))

	edits := efield.Edits{Serial: "CAFEBABE", Date: &efield.Date{Week: 2, Year: 2001}}
	require.NoError(t, EditFile(input, filepath.Join(dir, "out.bin"), edits))
	assert.Contains(t, logs.String(), `"msg":"editing"`)
	assert.Contains(t, logs.String(), `\"serial\":\"CAFEBABE\"`)
	assert.Contains(t, logs.String(), `\"date\":{\"week\":2,\"year\":2001}`)
}

func TestEditFile_Failure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, efixture.Base(), 0644))
	output := filepath.Join(dir, "out.bin")

	err := EditFile(input, output, efield.Edits{ProductName: "NOPE"})
	assert.True(t, errors.Is(err, edesc.ErrDescriptorNotFound))
	assert.NoFileExists(t, output)

	err = EditFile(filepath.Join(dir, "missing.bin"), output, efield.Edits{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInspectAndDump(t *testing.T) {
	dir := t.TempDir()
	bs := efixture.Base()
	efixture.PutDetailedTiming(bs, 0x36, 1280, 720, false)
	efixture.Seal(bs)
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, bs, 0644))

	report, err := Inspect(input)
	require.NoError(t, err)
	resolution, ok := report.Get("resolution")
	assert.True(t, ok)
	assert.Equal(t, "1280x720", resolution)

	text, err := DumpFile(input)
	require.NoError(t, err)
	hexPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(hexPath, []byte(text), 0644))

	res, output, err := ConvertFile(hexPath, "in.txt", filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, "1280x720", res)
	converted, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, bs, converted)
}

func TestInspect_MissingHeader(t *testing.T) {
	dir := t.TempDir()
	logs := &bytes.Buffer{}
	require.NoError(t, logger.Init(logger.Options{Output: logs}))
	defer func() { _ = logger.Init(logger.Options{Output: &bytes.Buffer{}}) }()

	valid := filepath.Join(dir, "valid.bin")
	require.NoError(t, os.WriteFile(valid, efixture.Base(), 0644))
	_, err := Inspect(valid)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "missing edid header")

	garbage := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, bytes.Repeat([]byte{0x11}, ebytes.BlockSize), 0644))
	report, err := Inspect(garbage)
	require.NoError(t, err)
	headerValid, _ := report.Get("header_valid")
	assert.Equal(t, false, headerValid)
	assert.Contains(t, logs.String(), "missing edid header")
}

func TestIsEDID(t *testing.T) {
	assert.True(t, IsEDID(efixture.Base()))
	assert.False(t, IsEDID(efixture.Base()[:7]))
	assert.False(t, IsEDID(bytes.Repeat([]byte{0xFF}, ebytes.BlockSize)))
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"a.txt":         filepath.Join("out", "1920x1080", "a.bin"),
		"sub/b.hex.txt": filepath.Join("out", "1920x1080", "sub", "b.hex.bin"),
		"noext":         filepath.Join("out", "1920x1080", "noext.bin"),
		".edid":         filepath.Join("out", "1920x1080", ".edid.bin"),
		"file.":         filepath.Join("out", "1920x1080", "file..bin"),
		"sub/v1.":       filepath.Join("out", "1920x1080", "sub", "v1..bin"),
	}
	for input, expected := range tests {
		assert.Equal(t, expected, OutputPath("out", "1920x1080", filepath.FromSlash(input)), input)
	}
}
