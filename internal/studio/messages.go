package studio

// User-facing workflow messages, localized the same way the HTTP layer
// resolves locales (en default, id supported).
var messages = map[string]map[string]string{
	"example_unavailable": {
		"en": "Could not load the example image. Please upload your own image to get started.",
		"id": "Contoh gambar gagal dimuat. Silakan unggah gambar Anda sendiri untuk memulai.",
	},
	"read_failed": {
		"en": "Failed to read the selected file. Please try a different image.",
		"id": "Gagal membaca file yang dipilih. Silakan coba gambar lain.",
	},
	"missing_image": {
		"en": "Please upload a product image first.",
		"id": "Silakan unggah foto produk terlebih dahulu.",
	},
	"missing_prompt": {
		"en": "Please describe the background you want.",
		"id": "Silakan jelaskan latar belakang yang Anda inginkan.",
	},
}

func message(key, locale string) string {
	m, ok := messages[key]
	if !ok {
		return ""
	}
	if v, ok := m[locale]; ok {
		return v
	}
	return m["en"]
}
