package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/padaria-criativa/catalog/internal/catalog/model"
	errx "github.com/padaria-criativa/catalog/internal/core/error"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataFile = "padaria.json"

func newTestStore(t *testing.T) (*Store, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	var diag bytes.Buffer
	return New(fsys, dataFile, &diag), fsys, &diag
}

func TestLoadMissingFile(t *testing.T) {
	s, _, diag := newTestStore(t)

	c := s.Load()

	assert.NotNil(t, c)
	assert.Empty(t, c)
	assert.Empty(t, diag.String())
}

func TestLoadBlankFile(t *testing.T) {
	s, fsys, diag := newTestStore(t)
	require.NoError(t, afero.WriteFile(fsys, dataFile, []byte("  \n"), 0o644))

	assert.Empty(t, s.Load())
	assert.Empty(t, diag.String())
}

func TestLoadInvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "{not json"},
		{"object instead of array", `{"Nome":"Pão"}`},
		{"wrong field type", `[{"Nome":"Pão","Preco":"caro","Estoque":1}]`},
		{"fractional stock", `[{"Nome":"Pão","Preco":1,"Estoque":2.5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fsys, diag := newTestStore(t)
			require.NoError(t, afero.WriteFile(fsys, dataFile, []byte(tt.content), 0o644))

			c := s.Load()

			assert.NotNil(t, c)
			assert.Empty(t, c)
			assert.Contains(t, diag.String(), "Erro ao carregar padaria.json")
		})
	}
}

func TestLoadIntegralFloatStock(t *testing.T) {
	s, fsys, diag := newTestStore(t)
	content := `[{"Nome":"Pão","Preco":0.75,"Estoque":3.0},{"Nome":"Bolo","Preco":30,"Estoque":1e1}]`
	require.NoError(t, afero.WriteFile(fsys, dataFile, []byte(content), 0o644))

	c := s.Load()

	assert.Equal(t, model.Catalog{
		{Name: "Pão", Price: 0.75, Stock: 3},
		{Name: "Bolo", Price: 30, Stock: 10},
	}, c)
	assert.Empty(t, diag.String())
}

func TestLoadNullDocument(t *testing.T) {
	s, fsys, _ := newTestStore(t)
	require.NoError(t, afero.WriteFile(fsys, dataFile, []byte("null"), 0o644))

	c := s.Load()
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _, diag := newTestStore(t)
	want := model.Catalog{
		{Name: "Pão francês", Price: 0.75, Stock: 120},
		{Name: "Bolo fatiado", Price: 6.5, Stock: 0},
		{Name: "Café", Price: 4, Stock: 3},
	}

	require.NoError(t, s.Save(want))
	got := s.Load()

	assert.Equal(t, want, got)
	assert.Empty(t, diag.String())
}

func TestSaveFormat(t *testing.T) {
	s, fsys, _ := newTestStore(t)

	require.NoError(t, s.Save(model.Catalog{{Name: "Pão de açúcar & mel", Price: 2.5, Stock: 10}}))

	raw, err := afero.ReadFile(fsys, dataFile)
	require.NoError(t, err)
	want := "[\n" +
		"    {\n" +
		"        \"Nome\": \"Pão de açúcar & mel\",\n" +
		"        \"Preco\": 2.5,\n" +
		"        \"Estoque\": 10\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, string(raw))
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	s := New(fsys, "/data/padaria.json", nil)
	require.NoError(t, s.Save(model.Catalog{{Name: "a", Price: 1, Stock: 1}, {Name: "b", Price: 2, Stock: 2}}))
	require.NoError(t, s.Save(model.Catalog{{Name: "c", Price: 3, Stock: 3}}))

	assert.Equal(t, model.Catalog{{Name: "c", Price: 3, Stock: 3}}, s.Load())

	entries, err := afero.ReadDir(fsys, "/data")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveFailure(t *testing.T) {
	var diag bytes.Buffer
	s := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), dataFile, &diag)

	err := s.Save(model.Catalog{{Name: "a", Price: 1, Stock: 1}})

	require.Error(t, err)
	assert.Equal(t, errx.KindIO, errx.KindOf(err))
	assert.Contains(t, diag.String(), "Erro ao salvar padaria.json")
}

func TestExport(t *testing.T) {
	t.Run("writes catalog to destination", func(t *testing.T) {
		s, fsys, _ := newTestStore(t)
		c := model.Catalog{{Name: "Sonho", Price: 3.2, Stock: 8}}

		require.NoError(t, s.Export(c, "exportacao_padaria.json"))

		raw, err := afero.ReadFile(fsys, "exportacao_padaria.json")
		require.NoError(t, err)
		want, err := Encode(c)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(raw))
	})

	t.Run("empty catalog creates no file", func(t *testing.T) {
		s, fsys, diag := newTestStore(t)

		err := s.Export(model.Catalog{}, "exportacao_padaria.json")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errx.ErrEmptyCatalog))
		assert.Equal(t, errx.KindEmpty, errx.KindOf(err))
		assert.Contains(t, diag.String(), "Não há dados para exportar.")
		exists, err := afero.Exists(fsys, "exportacao_padaria.json")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty catalog leaves existing destination untouched", func(t *testing.T) {
		s, fsys, _ := newTestStore(t)
		require.NoError(t, afero.WriteFile(fsys, "exportacao_padaria.json", []byte("old"), 0o644))

		require.Error(t, s.Export(nil, "exportacao_padaria.json"))

		raw, err := afero.ReadFile(fsys, "exportacao_padaria.json")
		require.NoError(t, err)
		assert.Equal(t, "old", string(raw))
	})

	t.Run("unwritable destination", func(t *testing.T) {
		var diag bytes.Buffer
		s := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), dataFile, &diag)

		err := s.Export(model.Catalog{{Name: "a", Price: 1, Stock: 1}}, "out.json")

		assert.Equal(t, errx.KindIO, errx.KindOf(err))
		assert.Contains(t, diag.String(), "Erro ao exportar")
	})
}

func TestReadRaw(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s, _, _ := newTestStore(t)

		_, err := s.ReadRaw()

		assert.True(t, errors.Is(err, errx.ErrNotFound))
		assert.Equal(t, errx.KindNotFound, errx.KindOf(err))
	})

	t.Run("returns content verbatim", func(t *testing.T) {
		s, fsys, _ := newTestStore(t)
		require.NoError(t, afero.WriteFile(fsys, dataFile, []byte("{corrupt"), 0o644))

		raw, err := s.ReadRaw()

		require.NoError(t, err)
		assert.Equal(t, "{corrupt", raw)
	})
}
