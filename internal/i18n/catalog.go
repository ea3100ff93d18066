// Package i18n translates GIB response codes into localized, severity-tagged
// messages. The catalog is a static table built at init and never mutated,
// so lookups are safe from any number of goroutines without locking.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale selects the message language.
type Locale string

const (
	LocaleTR Locale = "tr" // primary
	LocaleEN Locale = "en" // secondary
)

// Severity tags how a translated code should be presented.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Message is a translated catalog entry.
type Message struct {
	Code     string   `json:"code"`
	Text     string   `json:"message"`
	Severity Severity `json:"severity"`
}

type entry struct {
	tr       string
	en       string
	severity Severity
}

// catalog maps GIB response codes to their translations. Codes follow the
// regulator's four-digit scheme.
var catalog = map[string]entry{
	"1000": {"Zarf kuyruğa eklendi", "Envelope queued for processing", SeverityInfo},
	"1100": {"Zarf işleniyor", "Envelope is being processed", SeverityInfo},
	"1120": {"Zarf şema kontrolünden geçemedi", "Envelope failed schema validation", SeverityError},
	"1131": {"İmza sahibi yetkili değil", "Signatory is not authorized", SeverityError},
	"1140": {"Belge tipi desteklenmiyor", "Document type is not supported", SeverityError},
	"1161": {"Alıcı sistemde kayıtlı değil", "Receiver is not a registered user", SeverityError},
	"1171": {"Gönderici vergi kimlik numarası geçersiz", "Sender tax identifier is invalid", SeverityError},
	"1200": {"Zarf başarıyla işlendi", "Envelope processed successfully", SeverityInfo},
	"1210": {"Belge sistemde daha önce kayıtlı", "Document was already registered", SeverityWarning},
	"1215": {"Belge numarası mükerrer", "Duplicate document number", SeverityError},
	"1230": {"Alıcı belgeyi reddetti", "Receiver rejected the document", SeverityError},
	"2000": {"e-Arşiv raporu alındı", "Archive report received", SeverityInfo},
	"2200": {"e-Arşiv raporunda tutar uyuşmazlığı", "Amount mismatch in archive report", SeverityWarning},
	"3100": {"Berat dosyası geçersiz", "Ledger certification file is invalid", SeverityError},
}

var supported = language.NewMatcher([]language.Tag{
	language.Turkish, // first tag is the fallback
	language.English,
})

// ParseLocale normalizes a caller-supplied language tag ("tr", "tr-TR",
// "en-US", ...) to a supported Locale. Anything unrecognized falls back to
// the primary locale.
func ParseLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return LocaleTR
	}
	_, index, _ := supported.Match(tag)
	if index == 1 {
		return LocaleEN
	}
	return LocaleTR
}

// Translate looks up a GIB response code. Unknown codes degrade to a
// generated message with error severity rather than failing.
func Translate(code string, loc Locale) Message {
	e, ok := catalog[code]
	if !ok {
		text := fmt.Sprintf("Tanımsız yanıt kodu: %s", code)
		if loc == LocaleEN {
			text = fmt.Sprintf("Unrecognized response code: %s", code)
		}
		return Message{Code: code, Text: text, Severity: SeverityError}
	}

	text := e.tr
	if loc == LocaleEN {
		text = e.en
	}
	return Message{Code: code, Text: text, Severity: e.severity}
}
