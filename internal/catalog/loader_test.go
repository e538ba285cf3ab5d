package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

func TestLoadFile_ParsesFixture(t *testing.T) {
	// Given: the JSON fixture
	// When: loading it
	sets, err := LoadFile(filepath.Join("testdata", "icons.json"))

	// Then: sets and icons keep file order and every field is mapped
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Actions", sets[0].Set)
	assert.Equal(t, []string{"Platform"}, sets[0].Areas)
	assert.Equal(t, []string{"general", ""}, sets[0].Sections)
	require.Len(t, sets[0].Icons, 2)

	add := sets[0].Icons[0]
	assert.Equal(t, "add-icon", add.Name)
	assert.Equal(t, "Actions", add.Set, "icons are stamped with their set")
	assert.Equal(t, "Platform", add.Area)
	assert.Equal(t, "general", add.Section)
	assert.Equal(t, 2, add.Variants)
	assert.True(t, add.Dark)
	assert.False(t, add.HiDPI)
	assert.Equal(t, []Size{{16, 16}}, add.Sizes)
	assert.Equal(t, FormatVector, add.Format)
	assert.Equal(t, "AllIcons.General.Add", add.Qualified)

	closeIcon := sets[0].Icons[1]
	assert.Equal(t, FormatRaster, closeIcon.Format)
	assert.Equal(t, []Size{{16, 16}, {32, 32}}, closeIcon.Sizes)

	assert.Equal(t, "Nodes", sets[1].Set)
	assert.Len(t, sets[1].Icons, 3)
}

func TestLoadFile_YAML(t *testing.T) {
	sets, err := LoadFile(filepath.Join("testdata", "icons.yaml"))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0].Icons, 1)
	assert.Equal(t, "add-icon", sets[0].Icons[0].Name)
	assert.Equal(t, "Actions", sets[0].Icons[0].Set)
	assert.Equal(t, FormatVector, sets[0].Icons[0].Format)
}

func TestLoadFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.True(t, icerrors.HasCode(err, icerrors.ErrCodeCatalogNotFound))
	assert.True(t, icerrors.IsFatal(err))
}

func TestLoadFile_MalformedCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"set": `), 0o644))

	_, err := LoadFile(path)

	require.Error(t, err)
	var ce *icerrors.CatalogError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, icerrors.ErrCodeCatalogMalformed, ce.Code)
	assert.Equal(t, path, ce.Details["path"])
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "empty document", doc: ``},
		{name: "not an array", doc: `{"set": "Actions"}`},
		{name: "null document", doc: `null`},
		{name: "trailing data", doc: `[] []`},
		{name: "syntax error", doc: `[{"set": "A",}]`},
		{name: "wrong type", doc: `[{"set": 7, "sections": [], "icons": []}]`},
		{name: "missing set", doc: `[{"sections": [], "icons": []}]`, field: "[0].set"},
		{name: "missing sections", doc: `[{"set": "A", "icons": []}]`, field: "[0].sections"},
		{name: "missing icons", doc: `[{"set": "A", "sections": []}]`, field: "[0].icons"},
		{
			name:  "missing icon name",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"variants": 1, "sizes": [[1,1]], "kind": "svg"}]}]`,
			field: "[0].icons[0].name",
		},
		{
			name:  "missing kind",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 1, "sizes": [[1,1]]}]}]`,
			field: "[0].icons[0].kind",
		},
		{
			name:  "zero variants",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 0, "sizes": [[1,1]], "kind": "svg"}]}]`,
			field: "[0].icons[0].variants",
		},
		{
			name:  "no sizes",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 1, "sizes": [], "kind": "svg"}]}]`,
			field: "[0].icons[0].sizes",
		},
		{
			name:  "size not a pair",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 1, "sizes": [[16]], "kind": "svg"}]}]`,
			field: "[0].icons[0].sizes[0]",
		},
		{
			name:  "negative size",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 1, "sizes": [[16,16],[-1,32]], "kind": "png"}]}]`,
			field: "[0].icons[0].sizes[1]",
		},
		{
			name:  "fractional variants",
			doc:   `[{"set": "A", "sections": [""], "icons": [{"name": "x", "variants": 1.5, "sizes": [[1,1]], "kind": "svg"}]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := Load(strings.NewReader(tt.doc))

			require.Error(t, err)
			assert.Nil(t, sets, "a failed load returns no partial result")
			assert.True(t, icerrors.HasCode(err, icerrors.ErrCodeCatalogMalformed), "got %v", err)
			if tt.field != "" {
				var ce *icerrors.CatalogError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.field, ce.Details["field"])
			}
		})
	}
}

func TestLoad_SecondSizeImpliesHiDPI(t *testing.T) {
	doc := `[{"set": "A", "sections": [""], "icons": [
		{"name": "x", "variants": 1, "hiDPI": false, "sizes": [[16,16],[32,32]], "kind": "png"}
	]}]`

	sets, err := Load(strings.NewReader(doc))

	require.NoError(t, err)
	assert.True(t, sets[0].Icons[0].HiDPI)
}

func TestLoad_EmptyIconsIsValid(t *testing.T) {
	sets, err := Load(strings.NewReader(`[{"set": "A", "sections": ["x"], "icons": []}]`))

	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Empty(t, sets[0].Icons)
}

func TestLoad_EmptyArray(t *testing.T) {
	sets, err := Load(strings.NewReader(`[]`))

	require.NoError(t, err)
	assert.NotNil(t, sets)
	assert.Empty(t, sets)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatVector, ParseFormat("svg"))
	assert.Equal(t, FormatRaster, ParseFormat("png"))
	assert.Equal(t, FormatRaster, ParseFormat("SVG"), "kind matching is exact")
	assert.Equal(t, FormatRaster, ParseFormat(""))
	assert.Equal(t, "svg", FormatVector.Ext())
	assert.Equal(t, "png", FormatRaster.Ext())
}
