package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Shared chrome
	message.SetString(lang, "chrome.skip_to_content", "Skip to content")
	message.SetString(lang, "chrome.project", "Project")

	// Home page
	message.SetString(lang, "home.title", "Project overview")
	message.SetString(lang, "home.objects", "Registry objects")

	// Section names
	message.SetString(lang, "section.feature-views", "Feature Views")
	message.SetString(lang, "section.feature-services", "Feature Services")
	message.SetString(lang, "section.entities", "Entities")
	message.SetString(lang, "section.datasets", "Datasets")
	message.SetString(lang, "section.data-sources", "Data Sources")

	// Table headers
	message.SetString(lang, "field.name", "Name")
	message.SetString(lang, "field.description", "Description")
	message.SetString(lang, "field.value_type", "Value Type")
	message.SetString(lang, "field.join_key", "Join Key")
	message.SetString(lang, "field.entities", "Entities")
	message.SetString(lang, "field.features", "Features")
	message.SetString(lang, "field.projections", "Projections")
	message.SetString(lang, "field.feature_view", "Feature View")
	message.SetString(lang, "field.online", "Online")
	message.SetString(lang, "field.ttl", "TTL")
	message.SetString(lang, "field.source", "Source")
	message.SetString(lang, "field.type", "Type")
	message.SetString(lang, "field.path", "Path")
	message.SetString(lang, "field.storage_path", "Storage Path")
	message.SetString(lang, "field.join_keys", "Join Keys")
	message.SetString(lang, "field.event_timestamp_column", "Event Timestamp Column")
	message.SetString(lang, "field.labels", "Labels")
	message.SetString(lang, "field.owner", "Owner")
	message.SetString(lang, "field.created", "Created")
	message.SetString(lang, "field.updated", "Last Updated")

	// Detail pages
	message.SetString(lang, "detail.statistics_empty", "No statistics have been computed for this object yet.")
	message.SetString(lang, "detail.definition_hint", "Registry definition in YAML, as exported by the feature repository.")

	// Error pages
	message.SetString(lang, "error.title_not_found", "Page not found")
	message.SetString(lang, "error.message_not_found", "The page you requested does not exist in this registry.")
	message.SetString(lang, "error.title_server_error", "Something went wrong")
	message.SetString(lang, "error.message_server_error", "The console hit an unexpected error. Try again shortly.")
	message.SetString(lang, "error.back_home", "Back to project overview")
}
