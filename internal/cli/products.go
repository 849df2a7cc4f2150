package cli

import (
	"errors"
	"strings"

	errx "github.com/padaria-criativa/catalog/internal/core/error"
)

func (m *Menu) register() error {
	m.println("#=============== Cadastro de Produto ===============#")
	name, err := m.prompt("Digite o NOME do produto (ex: Pao frances, Bolo fatiado): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		m.reportRegister(errx.Validation(errx.ErrEmptyName))
		return nil
	}

	price, err := m.prompt("Digite o PREÇO do produto usando ponto como separador decimal (ex: 2.50): ")
	if err != nil {
		return err
	}
	stock, err := m.prompt("Digite a QUANTIDADE em estoque (somente número inteiro, ex: 10): ")
	if err != nil {
		return err
	}

	if _, err := m.svc.Register(name, price, stock); err != nil {
		m.reportRegister(err)
		return nil
	}
	m.println("Produto cadastrado com sucesso.")
	return nil
}

func (m *Menu) reportRegister(err error) {
	switch {
	case errors.Is(err, errx.ErrEmptyName):
		m.println("Nome vazio. Cadastro cancelado. Por favor, informe um nome válido.")
	case errors.Is(err, errx.ErrInvalidPrice):
		m.println("Preço inválido. Use um número como 2.50. Cadastro cancelado.")
	case errors.Is(err, errx.ErrInvalidStock):
		m.println("Estoque inválido. Use um número inteiro não-negativo. Cadastro cancelado.")
	default:
		m.println("Falha ao salvar produto.")
	}
}

func (m *Menu) list() {
	products := m.svc.List()
	if len(products) == 0 {
		m.println("Nenhum produto cadastrado. Use a opção 1 para adicionar produtos.")
		return
	}

	m.println("#========== Lista de produtos cadastrados ===========#")
	m.println()
	for i, p := range products {
		m.printf("%d) Nome: %s — Preço: R$ %.2f — Estoque: %d\n", i+1, p.Name, p.Price, p.Stock)
	}
	m.println("Fim da listagem.")
}

func (m *Menu) lowStock() error {
	text, err := m.prompt("Mostrar itens com estoque abaixo de (digite um número inteiro; pressione Enter para usar o padrão): ")
	if err != nil {
		return err
	}

	threshold, fellBack := m.svc.ParseThreshold(text)
	if fellBack {
		m.printf("Entrada inválida. Será usado o valor padrão %d.\n", threshold)
	}

	low := m.svc.LowStockReport(threshold)
	if len(low) == 0 {
		m.println("Nenhum produto com estoque abaixo do limite informado.")
		return nil
	}

	m.println()
	m.println("====== ITENS COM ESTOQUE BAIXO ======")
	for _, p := range low {
		m.printf("- %s (estoque: %d)\n", p.Name, p.Stock)
	}
	m.println("=====================================")
	return nil
}
