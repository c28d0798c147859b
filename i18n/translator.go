package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "invalid_enum":
			return "列挙型のメンバーではありません"
		case "invalid_value":
			return "値が不正です"
		case "unresolved_ref":
			return "型参照を解決できません"
		case "too_long":
			return "引数が多すぎます"
		case "max_depth":
			return "ネストが深すぎます"
		case "parse_error":
			return "解析エラー"
		case "business_rule":
			return "ルール違反です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "invalid_enum":
			return "not a member of the enum"
		case "invalid_value":
			return "invalid value"
		case "unresolved_ref":
			return "unresolved type reference"
		case "too_long":
			return "too many arguments"
		case "max_depth":
			return "max depth exceeded"
		case "parse_error":
			return "parse error"
		case "business_rule":
			return "rule violated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves a message for the given code via the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
