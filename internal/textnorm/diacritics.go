package textnorm

// diacritics maps accented Latin letters to their unaccented base form,
// preserving case. Covers the Vietnamese alphabet plus the Central European
// letters seen in the datasets (German, Czech). Best-effort table, not a full
// Unicode decomposition: unmapped runes pass through unchanged.
var diacritics = map[rune]string{
	// Vietnamese: a
	'á': "a", 'à': "a", 'ả': "a", 'ã': "a", 'ạ': "a",
	'ă': "a", 'ắ': "a", 'ằ': "a", 'ẳ': "a", 'ẵ': "a", 'ặ': "a",
	'â': "a", 'ấ': "a", 'ầ': "a", 'ẩ': "a", 'ẫ': "a", 'ậ': "a",
	'Á': "A", 'À': "A", 'Ả': "A", 'Ã': "A", 'Ạ': "A",
	'Ă': "A", 'Ắ': "A", 'Ằ': "A", 'Ẳ': "A", 'Ẵ': "A", 'Ặ': "A",
	'Â': "A", 'Ấ': "A", 'Ầ': "A", 'Ẩ': "A", 'Ẫ': "A", 'Ậ': "A",
	// Vietnamese: d
	'đ': "d", 'Đ': "D",
	// Vietnamese: e
	'é': "e", 'è': "e", 'ẻ': "e", 'ẽ': "e", 'ẹ': "e",
	'ê': "e", 'ế': "e", 'ề': "e", 'ể': "e", 'ễ': "e", 'ệ': "e",
	'É': "E", 'È': "E", 'Ẻ': "E", 'Ẽ': "E", 'Ẹ': "E",
	'Ê': "E", 'Ế': "E", 'Ề': "E", 'Ể': "E", 'Ễ': "E", 'Ệ': "E",
	// Vietnamese: i
	'í': "i", 'ì': "i", 'ỉ': "i", 'ĩ': "i", 'ị': "i",
	'Í': "I", 'Ì': "I", 'Ỉ': "I", 'Ĩ': "I", 'Ị': "I",
	// Vietnamese: o
	'ó': "o", 'ò': "o", 'ỏ': "o", 'õ': "o", 'ọ': "o",
	'ô': "o", 'ố': "o", 'ồ': "o", 'ổ': "o", 'ỗ': "o", 'ộ': "o",
	'ơ': "o", 'ớ': "o", 'ờ': "o", 'ở': "o", 'ỡ': "o", 'ợ': "o",
	'Ó': "O", 'Ò': "O", 'Ỏ': "O", 'Õ': "O", 'Ọ': "O",
	'Ô': "O", 'Ố': "O", 'Ồ': "O", 'Ổ': "O", 'Ỗ': "O", 'Ộ': "O",
	'Ơ': "O", 'Ớ': "O", 'Ờ': "O", 'Ở': "O", 'Ỡ': "O", 'Ợ': "O",
	// Vietnamese: u
	'ú': "u", 'ù': "u", 'ủ': "u", 'ũ': "u", 'ụ': "u",
	'ư': "u", 'ứ': "u", 'ừ': "u", 'ử': "u", 'ữ': "u", 'ự': "u",
	'Ú': "U", 'Ù': "U", 'Ủ': "U", 'Ũ': "U", 'Ụ': "U",
	'Ư': "U", 'Ứ': "U", 'Ừ': "U", 'Ử': "U", 'Ữ': "U", 'Ự': "U",
	// Vietnamese: y
	'ý': "y", 'ỳ': "y", 'ỷ': "y", 'ỹ': "y", 'ỵ': "y",
	'Ý': "Y", 'Ỳ': "Y", 'Ỷ': "Y", 'Ỹ': "Y", 'Ỵ': "Y",
	// German
	'ä': "a", 'ö': "o", 'ü': "u", 'Ä': "A", 'Ö': "O", 'Ü': "U", 'ß': "ss",
	// Czech
	'č': "c", 'ď': "d", 'ě': "e", 'ň': "n", 'ř': "r", 'š': "s", 'ť': "t", 'ů': "u", 'ž': "z",
	'Č': "C", 'Ď': "D", 'Ě': "E", 'Ň': "N", 'Ř': "R", 'Š': "S", 'Ť': "T", 'Ů': "U", 'Ž': "Z",
	// Spanish
	'ñ': "n", 'Ñ': "N",
}
