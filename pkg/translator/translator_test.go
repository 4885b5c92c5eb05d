package translator_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/edimundos/todo-interface/pkg/translator"
)

func localize(t *testing.T, lang, messageID string) string {
	t.Helper()
	localizer := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return msg
}

func TestInitTranslator_LoadsEmbeddedMessages(t *testing.T) {
	translator.InitTranslator()

	if got := localize(t, translator.LanguageEn, "loginFailed"); got != "Invalid username or password" {
		t.Errorf("unexpected english message: %q", got)
	}
	if got := localize(t, translator.LanguageFr, "loginFailed"); got != "Nom d'utilisateur ou mot de passe invalide" {
		t.Errorf("unexpected french message: %q", got)
	}
}

func TestInitTranslator_FallsBackToEnglish(t *testing.T) {
	translator.InitTranslator()

	localizer := i18n.NewLocalizer(translator.Translator, "de", translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "sessionExpired"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Session expired. Please login again" {
		t.Errorf("expected english fallback, got %q", msg)
	}
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageFr != "fr" {
		t.Errorf("expected LanguageFr to be 'fr'")
	}
}
