package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	errx "github.com/padaria-criativa/catalog/internal/core/error"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
)

// rawDocument shows the stored file and offers to export it.
func (m *Menu) rawDocument() error {
	raw, err := m.svc.RawDocument()
	if err != nil {
		if errors.Is(err, errx.ErrNotFound) {
			m.printf("Arquivo %s não encontrado. Nenhum dado salvo ainda.\n", m.svc.DataPath())
			return nil
		}
		logx.Warn().Err(err).Msg("failed to read catalog document")
		m.printf("Erro ao ler o arquivo JSON: %v\n", err)
		return nil
	}

	if strings.TrimSpace(raw) == "" {
		m.println("O arquivo JSON está vazio.")
	} else {
		m.println("=== Conteúdo do arquivo JSON ===")
		m.println(prettyJSON(raw))
		m.println("=== Fim do conteúdo ===")
	}

	answer, err := m.prompt("Deseja exportar esse conteúdo para '" + m.svc.ExportPath() + "'? (s/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "s" {
		return nil
	}
	if err := m.svc.Export(""); err == nil {
		m.printf("Dados exportados para: %s\n", m.svc.ExportPath())
	}
	return nil
}

// prettyJSON re-indents valid JSON with four spaces; anything else is returned verbatim.
// Escaped string literals are rewritten in plain UTF-8 while keys keep their order.
func prettyJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "    "); err != nil {
		return raw
	}
	return unescapeStrings(buf.Bytes())
}

// unescapeStrings walks valid JSON and re-encodes each string literal holding
// a backslash escape, leaving the rest of the text untouched.
func unescapeStrings(doc []byte) string {
	var out strings.Builder
	out.Grow(len(doc))
	for i := 0; i < len(doc); i++ {
		if doc[i] != '"' {
			out.WriteByte(doc[i])
			continue
		}
		end, escaped := i+1, false
		for ; end < len(doc) && doc[end] != '"'; end++ {
			if doc[end] == '\\' {
				escaped = true
				end++
			}
		}
		if end >= len(doc) {
			out.Write(doc[i:])
			break
		}
		literal := doc[i : end+1]
		if escaped {
			literal = reencode(literal)
		}
		out.Write(literal)
		i = end
	}
	return out.String()
}

func reencode(literal []byte) []byte {
	var s string
	if err := json.Unmarshal(literal, &s); err != nil {
		return literal
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return literal
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
