// Package i18n provides internationalization support for the yard service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.forbidden":             "Forbidden",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "Request timed out",
			"error.validation.containers": "containers: every container must have an id",
			"error.validation.stacks":     "stacks: invalid stack layout",
			"error.layout_not_found":      "No active stack layout for this yard",

			// Success messages
			"success.yard_resolved": "Yard resolution completed successfully",
		},
		"fr": {
			// Error messages
			"error.invalid_request":       "Requête invalide",
			"error.invalid_request_body":  "Corps de requête invalide",
			"error.internal_error":        "Une erreur inattendue s'est produite",
			"error.unauthorized":          "Non autorisé",
			"error.forbidden":             "Interdit",
			"error.not_found":             "Introuvable",
			"error.rate_limit_exceeded":   "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":              "Conflit",
			"error.timeout":               "La requête a expiré",
			"error.validation.containers": "containers: chaque conteneur doit avoir un id",
			"error.validation.stacks":     "stacks: configuration de piles invalide",
			"error.layout_not_found":      "Aucun plan de piles actif pour ce parc",

			// Success messages
			"success.yard_resolved": "Résolution du parc terminée avec succès",
		},
		"pt": {
			// Error messages
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.unauthorized":          "Não autorizado",
			"error.forbidden":             "Proibido",
			"error.not_found":             "Não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.timeout":               "A requisição expirou",
			"error.validation.containers": "containers: todo contêiner deve ter um id",
			"error.validation.stacks":     "stacks: configuração de pilhas inválida",
			"error.layout_not_found":      "Nenhum layout de pilhas ativo para este pátio",

			// Success messages
			"success.yard_resolved": "Resolução do pátio concluída com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.unauthorized":          "Niet geautoriseerd",
			"error.forbidden":             "Verboden",
			"error.not_found":             "Niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.timeout":               "Verzoek time-out",
			"error.validation.containers": "containers: elke container moet een id hebben",
			"error.validation.stacks":     "stacks: ongeldige stapelindeling",
			"error.layout_not_found":      "Geen actieve stapelindeling voor deze yard",

			// Success messages
			"success.yard_resolved": "Yard-resolutie succesvol voltooid",
		},
	}
}
