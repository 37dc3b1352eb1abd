package i18n

// languageData lists the built-in descriptors in lookup priority order.
// Header sniffing walks this order, so entries that share a prefix keep the
// regional variant guarded by a negative lookahead on the base entry.
var languageData = []languageRecord{
	{"af", "Afrikaans", "", `af|afrikaans`, ""},
	{"am", "Amharic", "አማርኛ", `am|amharic`, ""},
	{"ar", "Arabic", "العربية", `ar(?![-_]ly)([-_][a-z]{2,3})?|arabic`, "ar_AE"},
	{"ar_LY", "Arabic (Libya)", "ليبي", `ar[_-]ly|arabic (libya)|libian arabic`, "ar_LY"},
	{"az", "Azerbaijani", "Azərbaycanca", `az|azerbaijani`, ""},
	{"bn", "Bangla", "বাংলা", `bn|bangla`, ""},
	{"be", "Belarusian", "Беларуская", `be|belarusian`, "be_BY"},
	{"be@latin", "Belarusian (latin)", "Biełaruskaja", `be[-_]lat|be@latin|belarusian latin`, ""},
	{"ber", "Berber", "Tamaziɣt", `ber|berber`, ""},
	{"bg", "Bulgarian", "Български", `bg|bulgarian`, "bg_BG"},
	{"bs", "Bosnian", "Bosanski", `bs|bosnian`, ""},
	{"br", "Breton", "Brezhoneg", `br|breton`, ""},
	{"brx", "Bodo", "बड़ो", `brx|bodo`, ""},
	{"ca", "Catalan", "Català", `ca|catalan`, "ca_ES"},
	{"ckb", "Sorani", "سۆرانی", `ckb|sorani`, ""},
	{"cs", "Czech", "Čeština", `cs|czech`, "cs_CZ"},
	{"cy", "Welsh", "Cymraeg", `cy|welsh`, ""},
	{"da", "Danish", "Dansk", `da|danish`, "da_DK"},
	{"de", "German", "Deutsch", `de|german`, "de_DE"},
	{"el", "Greek", "Ελληνικά", `el|greek`, ""},
	{"en", "English", "", `en(?![-_]gb)([-_][a-z]{2,3})?|english`, "en_US"},
	{"en_GB", "English (United Kingdom)", "", `en[_-]gb|english (United Kingdom)`, "en_GB"},
	{"enm", "English (Middle)", "", `enm|english (middle)`, ""},
	{"eo", "Esperanto", "Esperanto", `eo|esperanto`, ""},
	{"es", "Spanish", "Español", `es|spanish`, "es_ES"},
	{"et", "Estonian", "Eesti", `et|estonian`, "et_EE"},
	{"eu", "Basque", "Euskara", `eu|basque`, "eu_ES"},
	{"fa", "Persian", "فارسی", `fa|persian`, ""},
	{"fi", "Finnish", "Suomi", `fi|finnish`, "fi_FI"},
	{"fil", "Filipino", "Pilipino", `fil|filipino`, ""},
	{"fr", "French", "Français", `fr|french`, "fr_FR"},
	{"fy", "Frisian", "Frysk", `fy|frisian`, ""},
	{"gl", "Galician", "Galego", `gl|galician`, "gl_ES"},
	{"gu", "Gujarati", "ગુજરાતી", `gu|gujarati`, "gu_IN"},
	{"he", "Hebrew", "עברית", `he|hebrew`, "he_IL"},
	{"hi", "Hindi", "हिन्दी", `hi|hindi`, "hi_IN"},
	{"hr", "Croatian", "Hrvatski", `hr|croatian`, "hr_HR"},
	{"hu", "Hungarian", "Magyar", `hu|hungarian`, "hu_HU"},
	{"hy", "Armenian", "Հայերէն", `hy|armenian`, ""},
	{"ia", "Interlingua", "", `ia|interlingua`, ""},
	{"id", "Indonesian", "Bahasa Indonesia", `id|indonesian`, "id_ID"},
	{"ig", "Igbo", "Asụsụ Igbo", `ig|igbo`, ""},
	{"it", "Italian", "Italiano", `it|italian`, "it_IT"},
	{"ja", "Japanese", "日本語", `ja|japanese`, "ja_JP"},
	{"ko", "Korean", "한국어", `ko|korean`, "ko_KR"},
	{"ka", "Georgian", "ქართული", `ka|georgian`, ""},
	{"kab", "Kabylian", "Taqbaylit", `kab|kabylian`, ""},
	{"kk", "Kazakh", "Қазақ", `kk|kazakh`, ""},
	{"km", "Khmer", "ខ្មែរ", `km|khmer`, ""},
	{"kn", "Kannada", "ಕನ್ನಡ", `kn|kannada`, ""},
	{"ksh", "Colognian", "Kölsch", `ksh|colognian`, ""},
	{"ku", "Kurdish", "کوردی", `ku|kurdish`, ""},
	{"ky", "Kyrgyz", "Кыргызча", `ky|kyrgyz`, ""},
	{"li", "Limburgish", "Lèmbörgs", `li|limburgish`, ""},
	{"lt", "Lithuanian", "Lietuvių", `lt|lithuanian`, "lt_LT"},
	{"lv", "Latvian", "Latviešu", `lv|latvian`, "lv_LV"},
	{"mk", "Macedonian", "Macedonian", `mk|macedonian`, "mk_MK"},
	{"ml", "Malayalam", "Malayalam", `ml|malayalam`, ""},
	{"mn", "Mongolian", "Монгол", `mn|mongolian`, "mn_MN"},
	{"ms", "Malay", "Bahasa Melayu", `ms|malay`, "ms_MY"},
	{"my", "Burmese", "မြန်မာ", `my|burmese`, ""},
	{"ne", "Nepali", "नेपाली", `ne|nepali`, ""},
	{"nb", "Norwegian", "Norsk", `nb|norwegian`, "nb_NO"},
	{"nn", "Norwegian Nynorsk", "Nynorsk", `nn|nynorsk`, "nn_NO"},
	{"nl", "Dutch", "Nederlands", `nl|dutch`, "nl_NL"},
	{"pa", "Punjabi", "ਪੰਜਾਬੀ", `pa|punjabi`, ""},
	{"pl", "Polish", "Polski", `pl|polish`, "pl_PL"},
	{"pt", "Portuguese", "Português", `pt(?![-_]br)([-_][a-z]{2,3})?|portuguese`, "pt_PT"},
	{"pt_BR", "Portuguese (Brazil)", "Português (Brasil)", `pt[-_]br|portuguese (brazil)`, "pt_BR"},
	{"rcf", "Réunion Creole", "Kréol", `rcf|creole (reunion)`, ""},
	{"ro", "Romanian", "Română", `ro|romanian`, "ro_RO"},
	{"ru", "Russian", "Русский", `ru|russian`, "ru_RU"},
	{"si", "Sinhala", "සිංහල", `si|sinhala`, ""},
	{"sk", "Slovak", "Slovenčina", `sk|slovak`, "sk_SK"},
	{"sl", "Slovenian", "Slovenščina", `sl|slovenian`, "sl_SI"},
	{"sq", "Albanian", "Shqip", `sq|albanian`, "sq_AL"},
	{"sr@latin", "Serbian (latin)", "Srpski", `sr[-_]lat|sr@latin|serbian latin`, "sr_YU"},
	{"sr", "Serbian", "Српски", `sr|serbian`, "sr_YU"},
	{"sv", "Swedish", "Svenska", `sv|swedish`, "sv_SE"},
	{"ta", "Tamil", "தமிழ்", `ta|tamil`, "ta_IN"},
	{"te", "Telugu", "తెలుగు", `te|telugu`, "te_IN"},
	{"th", "Thai", "ภาษาไทย", `th|thai`, "th_TH"},
	{"tk", "Turkmen", "Türkmençe", `tk|turkmen`, ""},
	{"tr", "Turkish", "Türkçe", `tr|turkish`, "tr_TR"},
	{"tt", "Tatarish", "Tatarça", `tt|tatarish`, ""},
	{"tzm", "Central Atlas Tamazight", "Tamaziɣt", `tzm|central atlas tamazight`, ""},
	{"ug", "Uyghur", "ئۇيغۇرچە", `ug|uyghur`, ""},
	{"uk", "Ukrainian", "Українська", `uk|ukrainian`, "uk_UA"},
	{"ur", "Urdu", "اُردوُ", `ur|urdu`, "ur_PK"},
	{"uz@latin", "Uzbek (latin)", "O‘zbekcha", `uz[-_]lat|uz@latin|uzbek-latin`, ""},
	{"uz", "Uzbek (cyrillic)", "Ўзбекча", `uz[-_]cyr|uz@cyrillic|uzbek-cyrillic`, ""},
	{"vi", "Vietnamese", "Tiếng Việt", `vi|vietnamese`, "vi_VN"},
	{"vls", "Flemish", "West-Vlams", `vls|flemish`, ""},
	{"zh_TW", "Chinese traditional", "中文", `zh[-_](tw|hk)|chinese traditional`, "zh_TW"},
	// only TW and HK use traditional Chinese, CN, SG and MY use simplified
	{"zh_CN", "Chinese simplified", "中文", `zh(?![-_](tw|hk))([-_][a-z]{2,3})?|chinese simplified`, "zh_CN"},
}
