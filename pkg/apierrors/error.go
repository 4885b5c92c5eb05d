package apierrors

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/edimundos/todo-interface/internal/core/domain"
	"github.com/edimundos/todo-interface/pkg/translator"
)

// ClientErr is the user-visible form of a failure: its kind from the error
// taxonomy plus a translated message.
type ClientErr struct {
	Kind    domain.FailureKind `json:"kind"`
	Message string             `json:"message"`
}

// Error implements the error interface for ClientErr.
func (e ClientErr) Error() string {
	return fmt.Sprintf("Kind: %s, Message: %s", e.Kind, e.Message)
}

// CreateError generates a ClientErr with a translated message.
func CreateError(kind domain.FailureKind, msgKey string, lang string) ClientErr {
	message := GetTransErrorMsg(msgKey, lang)
	return ClientErr{Kind: kind, Message: message}
}

// Describe turns any client error into its translated, user-visible form.
// fallbackKey is the operation-specific message used when the error carries
// no more precise one.
func Describe(err error, fallbackKey string, lang string) ClientErr {
	return CreateError(domain.KindOf(err), messageKeyFor(err, fallbackKey), lang)
}

// GetTransErrorMsg retrieves the translated message for a key.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

func messageKeyFor(err error, fallbackKey string) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Field {
		case "credentials":
			return MsgCredentialsRequired
		case "password":
			return MsgPasswordTooShort
		case "title":
			return MsgTitleRequired
		}
		return fallbackKey
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgLoginFailed
	case errors.Is(err, domain.ErrRegistrationRejected):
		return MsgRegisterFailed
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, domain.ErrNoSession):
		return MsgNotLoggedIn
	case errors.Is(err, domain.ErrTaskBusy):
		return MsgTaskBusy
	}

	var requestErr *domain.RequestError
	if errors.As(err, &requestErr) && requestErr.Kind == domain.FailureNetwork {
		return MsgNetworkError
	}
	return fallbackKey
}
