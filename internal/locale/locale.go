// Package locale holds the user-facing strings of the browser in English and
// Japanese.
package locale

import (
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	OpenFailed   = "open_failed"
	Properties   = "properties"
	NoProperties = "no_properties"
	Name         = "name"
	Location     = "location"
	Size         = "size"
	Type         = "type"
	Access       = "access"
	Yes          = "yes"
	No           = "no"
	Created      = "created"
	Modified     = "modified"
	Accessed     = "accessed"
	Unavailable  = "unavailable"
	TimeLayout   = "time_layout"
	EmptyDir     = "empty_dir"
	NoContent    = "no_content"
	Browsing     = "browsing"
	Viewing      = "viewing"
	Line         = "line"
)

var english = []*i18n.Message{
	{ID: OpenFailed, Other: "Could not open the file"},
	{ID: Properties, Other: "Properties"},
	{ID: NoProperties, Other: "No properties available for this path"},
	{ID: Name, Other: "Name:      "},
	{ID: Location, Other: "Location:  "},
	{ID: Size, Other: "Size:      "},
	{ID: Type, Other: "Type:      "},
	{ID: Access, Other: "Access:    "},
	{ID: Yes, Other: "yes"},
	{ID: No, Other: "no"},
	{ID: Created, Other: "Created:   "},
	{ID: Modified, Other: "Modified:  "},
	{ID: Accessed, Other: "Accessed:  "},
	{ID: Unavailable, Other: "unavailable"},
	{ID: TimeLayout, Other: "2006-01-02 15:04"},
	{ID: EmptyDir, Other: "(empty directory)"},
	{ID: NoContent, Other: "(nothing opened)"},
	{ID: Browsing, Other: "browse"},
	{ID: Viewing, Other: "view"},
	{ID: Line, Other: "ln"},
}

var japanese = []*i18n.Message{
	{ID: OpenFailed, Other: "ファイルが開けませんでした"},
	{ID: Properties, Other: "プロパティモード"},
	{ID: NoProperties, Other: "プロパティを取得できませんでした"},
	{ID: Name, Other: "ファイル名："},
	{ID: Location, Other: "場所："},
	{ID: Size, Other: "サイズ："},
	{ID: Type, Other: "種類："},
	{ID: Access, Other: "アクセス："},
	{ID: Yes, Other: "可能"},
	{ID: No, Other: "不可"},
	{ID: Created, Other: "ファイル作成日："},
	{ID: Modified, Other: "最終更新日　　："},
	{ID: Accessed, Other: "最終アクセス　："},
	{ID: Unavailable, Other: "取得できませんでした"},
	{ID: TimeLayout, Other: "2006年1月2日15時4分"},
	{ID: EmptyDir, Other: "（空のフォルダ）"},
	{ID: NoContent, Other: "（何も開いていません）"},
	{ID: Browsing, Other: "ブラウズ"},
	{ID: Viewing, Other: "閲覧"},
	{ID: Line, Other: "行"},
}

var defaults = func() map[string]*i18n.Message {
	m := make(map[string]*i18n.Message, len(english))
	for _, msg := range english {
		m[msg.ID] = msg
	}
	return m
}()

// Translator resolves message IDs for one language.
type Translator struct {
	localizer *i18n.Localizer
}

// New returns a translator for tag ("en", "ja", "ja-JP" ...). An empty tag
// is taken from $LANG; unknown languages get English.
func New(tag string) *Translator {
	if tag == "" {
		tag = fromEnv(os.Getenv("LANG"))
	}

	bundle := i18n.NewBundle(language.English)
	// The catalogs are static and well formed.
	_ = bundle.AddMessages(language.English, english...)
	_ = bundle.AddMessages(language.Japanese, japanese...)

	return &Translator{localizer: i18n.NewLocalizer(bundle, tag, language.English.String())}
}

// T returns the text for id, falling back to English.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: defaults[id],
	})
	if err != nil && msg == "" {
		return id
	}
	return msg
}

// fromEnv turns a POSIX locale such as "ja_JP.UTF-8" into a BCP 47 tag.
func fromEnv(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
