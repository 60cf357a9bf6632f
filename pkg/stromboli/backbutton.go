package stromboli

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"
)

// backTitleID is the message ID for the localized fallback title.
const backTitleID = "BackButtonTruncatedTitle"

var (
	backBundleOnce sync.Once
	backBundle     *i18n.Bundle
)

func backTitleBundle() *i18n.Bundle {
	backBundleOnce.Do(func() {
		backBundle = i18n.NewBundle(language.English)
		backBundle.AddMessages(language.English, &i18n.Message{ID: backTitleID, Other: "Back"})
		backBundle.AddMessages(language.Italian, &i18n.Message{ID: backTitleID, Other: "Indietro"})
		backBundle.AddMessages(language.Spanish, &i18n.Message{ID: backTitleID, Other: "Atrás"})
		backBundle.AddMessages(language.French, &i18n.Message{ID: backTitleID, Other: "Retour"})
		backBundle.AddMessages(language.German, &i18n.Message{ID: backTitleID, Other: "Zurück"})
	})
	return backBundle
}

// DefaultTruncatedTitle returns the localized fallback title for the
// preferred languages, in order of preference. With no preferences it
// returns the English "Back".
func DefaultTruncatedTitle(langs ...string) string {
	localizer := i18n.NewLocalizer(backTitleBundle(), langs...)
	title, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: backTitleID})
	if err != nil {
		return "Back"
	}
	return title
}

// BackButton is the presentational model for the header back control. It
// holds the control's props and the title-substitution decision; how the
// control is drawn belongs to the host framework.
type BackButton struct {
	// OnPress is invoked when the control is pressed. Typically it wraps
	// the navigation handle's Back.
	OnPress func()

	// Title is the full title shown next to the chevron. Empty for an
	// icon-only control.
	Title string

	// TruncatedTitle substitutes for Title when it does not fit Width.
	TruncatedTitle string

	// TintColor tints the chevron and title.
	TintColor sdl.Color

	// PressColor is the pressed-state highlight.
	PressColor sdl.Color

	// Width is the space available to the title. Zero means unconstrained.
	Width int32

	measuredWidth int32
}

// Default back button colors.
var (
	DefaultTintColor  = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	DefaultPressColor = sdl.Color{R: 0, G: 0, B: 0, A: 82}
)

// NewBackButton creates a back button model with the localized default
// truncated title and default colors. The press handler is required.
func NewBackButton(onPress func()) (*BackButton, error) {
	if onPress == nil {
		return nil, ErrMissingPressHandler
	}
	return &BackButton{
		OnPress:        onPress,
		TruncatedTitle: DefaultTruncatedTitle(),
		TintColor:      DefaultTintColor,
		PressColor:     DefaultPressColor,
	}, nil
}

// SetMeasuredTitleWidth records the rendered width of the full title, as
// measured by the host's text layout.
func (b *BackButton) SetMeasuredTitleWidth(w int32) {
	b.measuredWidth = w
}

// Label returns the title to render: the full title while it fits the
// available width, the truncated title once its measured width exceeds it.
func (b *BackButton) Label() string {
	if b.Title == "" {
		return ""
	}
	if b.Width > 0 && b.measuredWidth > b.Width && b.TruncatedTitle != "" {
		return b.TruncatedTitle
	}
	return b.Title
}

// Press invokes the press handler.
func (b *BackButton) Press() {
	b.OnPress()
}
