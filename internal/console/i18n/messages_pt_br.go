package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "chrome.skip_to_content", "Pular para o conteúdo")
	message.SetString(lang, "chrome.project", "Projeto")

	message.SetString(lang, "home.title", "Visão geral do projeto")
	message.SetString(lang, "home.objects", "Objetos do registro")

	message.SetString(lang, "section.feature-views", "Feature Views")
	message.SetString(lang, "section.feature-services", "Feature Services")
	message.SetString(lang, "section.entities", "Entidades")
	message.SetString(lang, "section.datasets", "Datasets")
	message.SetString(lang, "section.data-sources", "Fontes de Dados")

	message.SetString(lang, "field.name", "Nome")
	message.SetString(lang, "field.description", "Descrição")
	message.SetString(lang, "field.value_type", "Tipo de Valor")
	message.SetString(lang, "field.join_key", "Chave de Junção")
	message.SetString(lang, "field.entities", "Entidades")
	message.SetString(lang, "field.features", "Features")
	message.SetString(lang, "field.projections", "Projeções")
	message.SetString(lang, "field.feature_view", "Feature View")
	message.SetString(lang, "field.online", "Online")
	message.SetString(lang, "field.ttl", "TTL")
	message.SetString(lang, "field.source", "Fonte")
	message.SetString(lang, "field.type", "Tipo")
	message.SetString(lang, "field.path", "Caminho")
	message.SetString(lang, "field.storage_path", "Caminho de Armazenamento")
	message.SetString(lang, "field.join_keys", "Chaves de Junção")
	message.SetString(lang, "field.event_timestamp_column", "Coluna de Timestamp de Evento")
	message.SetString(lang, "field.labels", "Rótulos")
	message.SetString(lang, "field.owner", "Responsável")
	message.SetString(lang, "field.created", "Criado em")
	message.SetString(lang, "field.updated", "Atualizado em")

	message.SetString(lang, "detail.statistics_empty", "Nenhuma estatística foi calculada para este objeto ainda.")
	message.SetString(lang, "detail.definition_hint", "Definição do registro em YAML, como exportada pelo repositório de features.")

	message.SetString(lang, "error.title_not_found", "Página não encontrada")
	message.SetString(lang, "error.message_not_found", "A página solicitada não existe neste registro.")
	message.SetString(lang, "error.title_server_error", "Algo deu errado")
	message.SetString(lang, "error.message_server_error", "O console encontrou um erro inesperado. Tente novamente em instantes.")
	message.SetString(lang, "error.back_home", "Voltar para a visão geral do projeto")
}
