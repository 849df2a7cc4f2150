package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/padaria-criativa/catalog/internal/catalog/model"
	"github.com/padaria-criativa/catalog/internal/catalog/service"
)

const nameColumn = 30

var _ service.OfferPrompter = (*offerPrompter)(nil)

type offerPrompter struct {
	m *Menu
}

func (p offerPrompter) ChooseProduct(eligible model.Catalog) (string, error) {
	m := p.m
	m.println("Produtos disponíveis para promoção:")
	header := fmt.Sprintf("%-3s %-30s %10s %8s", "Nº", "Produto", "Preço", "Estoque")
	rule := strings.Repeat("-", utf8.RuneCountInString(header))
	m.println(header)
	m.println(rule)
	for i, prod := range eligible {
		m.printf("%-3d %-30s R$ %7.2f %8d\n", i+1, truncate(prod.Name, nameColumn), prod.Price, prod.Stock)
	}
	m.println(rule)
	m.println()

	answer, err := m.prompt(fmt.Sprintf("Digite o NÚMERO do produto que será a promoção (ou '%s' para cancelar): ", service.CancelToken))
	m.println()
	return answer, err
}

func (p offerPrompter) DiscountPercent(model.Product) (string, error) {
	answer, err := p.m.prompt("Digite o percentual de desconto a aplicar (ex: 20 para 20% — pressione Enter para usar o padrão): ")
	p.m.println()
	return answer, err
}

func (m *Menu) dailyOffer() error {
	res, err := m.svc.SelectDailyOffer(offerPrompter{m: m})
	if err != nil {
		return err
	}

	switch res.Outcome {
	case service.OfferNoCatalog:
		m.println("Nenhum produto cadastrado para definir promoção.")
	case service.OfferNoStock:
		m.println("Nenhum produto com estoque disponível para promoção.")
	case service.OfferCancelled:
		m.println("Promoção cancelada pelo usuário.")
	case service.OfferInvalidSelection:
		m.println("Entrada inválida. A promoção foi cancelada. Digite um número válido na próxima vez.")
	case service.OfferSelected:
		if res.DiscountFellBack {
			m.printf("Percentual inválido. Será usado %s%% por padrão.\n", res.Offer.DiscountPercent)
		}
		m.printOffer(res.Offer)
	}
	return nil
}

func (m *Menu) printOffer(o *model.Offer) {
	m.println("======= OFERTA DO DIA =======")
	m.printf("Produto: %s\n", o.Name)
	m.printf("Preço original: R$ %s\n", o.OriginalPrice.StringFixed(2))
	m.printf("Desconto aplicado: %s%%\n", o.DiscountPercent)
	m.printf("Preço com desconto: R$ %s\n", o.DiscountedPrice.StringFixed(2))
	m.printf("Estoque disponível: %d\n", o.Stock)
	m.println("=============================")
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}
