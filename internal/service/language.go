package service

// responseLanguage maps a UI language code to the language name used in
// prompts. Unknown codes fall back to English.
func responseLanguage(code string) string {
	switch code {
	case "ur":
		return "Urdu"
	case "hi":
		return "Hindi"
	case "ar":
		return "Arabic"
	case "en":
		return "English"
	}
	return "English"
}

// medicalDisclaimer is the fixed sentence the assistant must append after
// any medication list, per response language.
func medicalDisclaimer(language string) string {
	switch language {
	case "Urdu":
		return "ان ادویات کے استعمال سے پہلے ڈاکٹر سے مشورہ ضرور کریں۔"
	case "Hindi":
		return "इन दवाइयों को लेने से पहले कृपया डॉक्टर से सलाह लें।"
	case "Arabic":
		return "يرجى استشارة الطبيب قبل تناول هذه الأدوية."
	}
	return "Please consult with a doctor before taking Result."
}
