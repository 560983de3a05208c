package domain

// BilingualText holds the English and Arabic renditions of a string.
type BilingualText struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the rendition for lang.
func (t BilingualText) In(lang Language) string {
	if lang == LangArabic {
		return t.AR
	}
	return t.EN
}

// Bi is shorthand for constructing a BilingualText.
func Bi(en, ar string) BilingualText {
	return BilingualText{EN: en, AR: ar}
}
