// Package cli is the interactive text menu in front of the catalog service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/padaria-criativa/catalog/internal/catalog/service"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
)

const (
	optRegister = "1"
	optList     = "2"
	optOffer    = "3"
	optLowStock = "4"
	optExit     = "5"
	// optRawJSON is not listed in the menu.
	optRawJSON = ".json"
)

const banner = `
#========== 🥐 MENU - Padaria Criativa 🥐 ==========#
1 - Cadastrar produto
2 - Listar produtos
3 - Oferta do dia (escolha manual)
4 - Relatório: itens com estoque abaixo de X
5 - Sair
#===================================================#
`

// Menu reads one answer per line from in and writes everything the user sees to out.
type Menu struct {
	svc *service.Service
	in  *bufio.Scanner
	out io.Writer
}

func New(svc *service.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the menu until the user exits or input ends. Only a failure to
// read input is returned.
func (m *Menu) Run() error {
	for {
		m.println(banner)
		op, err := m.prompt("Opção (digite o número correspondente, ex: 1): ")
		if err != nil {
			return m.finish(err)
		}
		m.println()

		switch {
		case op == optRegister:
			err = m.register()
		case op == optList:
			m.list()
		case op == optOffer:
			err = m.dailyOffer()
		case op == optLowStock:
			err = m.lowStock()
		case strings.EqualFold(op, optRawJSON):
			err = m.rawDocument()
		case op == optExit:
			m.println("Saindo. Volte sempre à padaria :)")
			return nil
		default:
			m.println("Opção inválida. Digite o número correspondente às opções do menu (ex: 2).")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		logx.Debug().Msg("input closed, leaving menu")
		m.println()
		m.println("Saindo. Volte sempre à padaria :)")
		return nil
	}
	logx.Error().Err(err).Msg("failed to read input")
	return err
}

// prompt returns the next trimmed input line, or io.EOF when input ends.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	fmt.Fprintf(m.out, format, a...)
}
