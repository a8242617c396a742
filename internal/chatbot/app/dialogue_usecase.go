package app

import (
	"time"

	"reuse_market_service/internal/chatbot/domain"
)

// DialogueUseCase 無狀態的教學對話機器人
// 回覆完全由 buttonValue 查表決定, 不保存任何對話狀態
type DialogueUseCase interface {
	Reply(buttonValue string) domain.DialogueResponse
	Info() map[string]interface{}
}

type dialogueUseCase struct{}

// NewDialogueUseCase create DialogueUseCase
func NewDialogueUseCase() DialogueUseCase {
	return &dialogueUseCase{}
}

type dialogueEntry struct {
	content string
	buttons []domain.Button
	step    string
}

// 對話決策表, key 是前端送來的 buttonValue
var dialogueTable = map[string]dialogueEntry{
	"start_tutorial": {
		content: "📝 **PASSO 1: TÍTULO DO PRODUTO**\n\nO título deve ser claro e descritivo.\n\n**Exemplos bons:**\n• iPhone 12 em ótimo estado\n• Mesa de escritório de madeira\n• Livros de programação React\n\n**Exemplos ruins:**\n• Vendo\n• Item usado\n• Produto",
		buttons: []domain.Button{
			{Text: "Próximo Passo ➡️", Value: "step_2"},
			{Text: "Ver exemplo novamente 🔄", Value: "repeat_step_1"},
			{Text: "Voltar ⬅️", Value: "welcome"},
		},
		step: "step_1",
	},
	"step_2": {
		content: "🏷️ **PASSO 2: CATEGORIA DO PRODUTO**\n\nA categoria ajuda outros usuários a encontrar seu produto.\n\n**Categorias disponíveis:**\n\n📱 **Eletrônicos** - Celulares, computadores, tablets\n👕 **Roupas** - Vestuário, calçados, acessórios\n📚 **Livros** - Livros físicos e digitais\n🪑 **Móveis** - Mesas, cadeiras, armários\n🏠 **Casa e Jardim** - Decoração, plantas, utensílios\n⚽ **Esportes** - Equipamentos esportivos\n🧸 **Brinquedos** - Brinquedos para crianças\n📦 **Outros** - Itens que não se encaixam nas categorias acima",
		buttons: []domain.Button{
			{Text: "Próximo Passo ➡️", Value: "step_3"},
			{Text: "Ver categorias novamente 🔄", Value: "repeat_step_2"},
			{Text: "Voltar ⬅️", Value: "step_1"},
		},
		step: "step_2",
	},
	"step_3": {
		content: "📄 **PASSO 3: DESCRIÇÃO DO PRODUTO**\n\nA descrição é opcional, mas **altamente recomendada**!\n\n**O que incluir na descrição:**\n\n✅ **Estado do produto** (novo, usado, seminovo)\n✅ **Detalhes técnicos** (especificações, modelo)\n✅ **Acessórios incluídos** (carregador, caixa, etc.)\n✅ **Motivo da troca** (opcional)\n✅ **Defeitos menores** (se houver)\n\n**Exemplo de boa descrição:**\n\n*\"iPhone 12 com 128GB, sem riscos na tela, bateria com 85% de saúde. Inclui carregador original, cabo USB-C e película de vidro. Troco porque comprei um modelo mais novo.\"*\n\n**Dica:** Seja honesto sobre o estado do produto!",
		buttons: []domain.Button{
			{Text: "Próximo Passo ➡️", Value: "step_4"},
			{Text: "Ver exemplos novamente 🔄", Value: "repeat_step_3"},
			{Text: "Voltar ⬅️", Value: "step_2"},
		},
		step: "step_3",
	},
	"step_4": {
		content: "📸 **PASSO 4: IMAGEM DO PRODUTO**\n\nUma boa imagem aumenta muito as chances de troca!\n\n**Como adicionar imagem:**\n\n**Opção 1 - Upload de arquivo:**\n• Clique em 'Upload de Arquivo'\n• Selecione uma foto do seu dispositivo\n• Formatos aceitos: JPG, PNG, GIF\n\n**Opção 2 - URL da imagem:**\n• Cole o link de uma imagem da internet\n• Certifique-se que a URL está funcionando\n\n**Dicas para uma boa foto:**\n\n✅ **Boa iluminação** - Evite fotos escuras\n✅ **Produto em destaque** - Evite fundos bagunçados\n✅ **Múltiplos ângulos** - Se possível, várias fotos\n✅ **Mostre detalhes** - Especialmente se houver defeitos\n\n**Lembre-se:** A imagem é opcional, mas produtos com foto têm 3x mais visualizações!",
		buttons: []domain.Button{
			{Text: "Próximo Passo ➡️", Value: "step_5"},
			{Text: "Ver dicas novamente 🔄", Value: "repeat_step_4"},
			{Text: "Voltar ⬅️", Value: "step_3"},
		},
		step: "step_4",
	},
	"step_5": {
		content: "🎉 **PARABÉNS! Você aprendeu como cadastrar um produto!**\n\n**📋 RESUMO DO QUE APRENDEMOS:**\n\n1️⃣ **Título** - Claro e descritivo\n2️⃣ **Categoria** - Escolha a mais adequada\n3️⃣ **Descrição** - Detalhe o estado e características\n4️⃣ **Imagem** - Foto de qualidade (opcional)\n\n**🚀 PRÓXIMOS PASSOS:**\n\n1. Acesse a página 'Anunciar Produto'\n2. Preencha os campos seguindo nossas dicas\n3. Revise todas as informações\n4. Clique em 'Anunciar Produto'\n5. Aguarde a aprovação (se necessário)\n\n**💡 DICAS EXTRAS:**\n\n• Seja honesto sobre o estado do produto\n• Responda mensagens de interessados rapidamente\n• Mantenha suas informações de contato atualizadas\n• Considere trocar por produtos de valor similar\n\n**Precisa de mais ajuda?** Estou sempre aqui! 😊",
		buttons: []domain.Button{
			{Text: "Ir para cadastro de produto 🚀", Value: "go_to_form"},
			{Text: "Revisar tutorial 🔄", Value: "start_tutorial"},
			{Text: "Preciso de mais ajuda ❓", Value: "general_help"},
			{Text: "Finalizar ✅", Value: "finish"},
		},
		step: "step_5",
	},
	"general_help": {
		content: "❓ **AJUDA GERAL - PLATAFORMA REUSE**\n\n**🌱 O que é a ReUse?**\nA ReUse é uma plataforma que conecta pessoas para trocar itens usados, promovendo sustentabilidade e economia circular.\n\n**🔍 COMO FUNCIONA:**\n\n1️⃣ **Cadastre-se** - Crie sua conta gratuitamente\n2️⃣ **Anuncie produtos** - Publique itens que você não usa mais\n3️⃣ **Procure produtos** - Encontre itens que você precisa\n4️⃣ **Troque** - Negocie trocas com outros usuários\n\n**💬 SISTEMA DE MENSAGENS:**\n• Converse diretamente com outros usuários\n• Negocie detalhes da troca\n• Combine local e forma de entrega\n\n**🛡️ SEGURANÇA:**\n• Todos os usuários são verificados\n• Sistema de avaliações\n• Suporte ao cliente disponível\n\n**📞 CONTATO:**\n• Email: suporte@reuse.com.br\n• WhatsApp: (11) 99999-9999\n• Horário: Segunda a Sexta, 9h às 18h",
		buttons: []domain.Button{
			{Text: "Voltar ao tutorial 📝", Value: "start_tutorial"},
			{Text: "Preciso de suporte técnico 🔧", Value: "tech_support"},
			{Text: "Finalizar ✅", Value: "finish"},
		},
		step: "general_help",
	},
	"finish": {
		content: "✅ **Tutorial finalizado!**\n\nObrigado por usar o assistente da ReUse!\n\n**Lembre-se:**\n• Seja honesto sobre o estado dos produtos\n• Responda mensagens rapidamente\n• Mantenha suas informações atualizadas\n\n**Precisa de ajuda?** Estou sempre aqui! 😊\n\n**Boa sorte com suas trocas!** 🌱♻️",
		buttons: []domain.Button{
			{Text: "Iniciar novo tutorial 🔄", Value: "start_tutorial"},
			{Text: "Ir para a plataforma 🚀", Value: "go_to_platform"},
		},
		step: "finished",
	},
}

// welcomeEntry 查不到的輸入一律回到起點
var welcomeEntry = dialogueEntry{
	content: "🤖 Olá! Sou o assistente da ReUse. Para começar, clique em um dos botões abaixo:",
	buttons: []domain.Button{
		{Text: "Iniciar Tutorial 🚀", Value: "start_tutorial"},
		{Text: "Ajuda Geral ❓", Value: "general_help"},
	},
	step: "welcome",
}

// Reply
func (d *dialogueUseCase) Reply(buttonValue string) domain.DialogueResponse {
	entry, ok := dialogueTable[buttonValue]
	if !ok {
		entry = welcomeEntry
	}

	return domain.DialogueResponse{
		Type:      "message",
		Content:   entry.content,
		Buttons:   entry.buttons,
		Step:      entry.step,
		Timestamp: time.Now(),
	}
}

// Info 機器人與平台的能力描述, 提供給外部系統查詢
func (d *dialogueUseCase) Info() map[string]interface{} {
	return map[string]interface{}{
		"chatbot": map[string]interface{}{
			"name":        "ReUse Assistant",
			"version":     "1.0.0",
			"description": "Assistente para orientação de cadastro de produtos na plataforma ReUse",
			"capabilities": []string{
				"Tutorial passo a passo para cadastro de produtos",
				"Orientações sobre título, categoria, descrição e imagem",
				"Dicas de boas práticas",
				"Ajuda geral sobre a plataforma",
			},
			"endpoints": map[string]string{
				"start": "/api/chatbot/help - POST - Iniciar conversa",
				"help":  "/api/chatbot/help - GET - Informações sobre o chatbot",
			},
			"steps": []map[string]interface{}{
				{"step": 1, "title": "Título do Produto", "description": "Orientações sobre como criar um título claro e descritivo"},
				{"step": 2, "title": "Categoria", "description": "Explicação das categorias disponíveis"},
				{"step": 3, "title": "Descrição", "description": "Dicas para escrever uma boa descrição"},
				{"step": 4, "title": "Imagem", "description": "Orientações sobre upload e qualidade de imagens"},
				{"step": 5, "title": "Finalização", "description": "Resumo e próximos passos"},
			},
		},
		"platform": map[string]interface{}{
			"name":        "ReUse",
			"description": "Plataforma de reutilização de itens para promover sustentabilidade",
			"features": []string{
				"Cadastro de produtos para troca",
				"Sistema de mensagens entre usuários",
				"Categorização de produtos",
				"Sistema de autenticação",
			},
			"categories": []string{
				"Eletrônicos",
				"Roupas",
				"Livros",
				"Móveis",
				"Casa e Jardim",
				"Esportes",
				"Brinquedos",
				"Outros",
			},
		},
	}
}
